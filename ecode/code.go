package ecode

import (
	"net/http"
	"sync"
)

const (
	OK = 0

	Unauthorized = -101
	AccessDenied = -103

	RequestErr       = -400
	ParamErr         = -401
	NothingFound     = -404
	MethodNotAllowed = -405
	Conflict         = -409

	ServerErr          = -500
	ServiceUnavailable = -503
	Deadline           = -504

	// table rendering
	TableNotFound = -1101
	FilterErr     = -1102
	ResolveErr    = -1103
	QueryErr      = -1104
)

var (
	mu       sync.RWMutex
	messages = map[int]string{
		OK:                 "ok",
		Unauthorized:       "Unauthorized",
		AccessDenied:       "Access denied",
		RequestErr:         "Invalid request",
		ParamErr:           "Invalid parameters",
		NothingFound:       "Resource not found",
		MethodNotAllowed:   "Method not allowed",
		Conflict:           "Resource conflict",
		ServerErr:          "Internal server error",
		ServiceUnavailable: "Service unavailable",
		Deadline:           "Deadline exceeded",
		TableNotFound:      "Table not found",
		FilterErr:          "Invalid filter",
		ResolveErr:         "Column value could not be resolved",
		QueryErr:           "Table query failed",
	}
	statuses = map[int]int{
		OK:                 http.StatusOK,
		Unauthorized:       http.StatusUnauthorized,
		AccessDenied:       http.StatusForbidden,
		RequestErr:         http.StatusBadRequest,
		ParamErr:           http.StatusBadRequest,
		NothingFound:       http.StatusNotFound,
		MethodNotAllowed:   http.StatusMethodNotAllowed,
		Conflict:           http.StatusConflict,
		ServerErr:          http.StatusInternalServerError,
		ServiceUnavailable: http.StatusServiceUnavailable,
		Deadline:           http.StatusGatewayTimeout,
		TableNotFound:      http.StatusNotFound,
		FilterErr:          http.StatusBadRequest,
		ResolveErr:         http.StatusInternalServerError,
		QueryErr:           http.StatusInternalServerError,
	}
)

// Text returns the message for code. Unknown codes that look like an HTTP
// status return the standard status text.
func Text(code int) string {
	mu.RLock()
	defer mu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a business code to an HTTP status.
func ToHTTPStatus(code int) int {
	mu.RLock()
	defer mu.RUnlock()
	if status, ok := statuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Register adds or replaces the message for a custom code.
func Register(code int, message string, status ...int) {
	mu.Lock()
	defer mu.Unlock()
	messages[code] = message
	if len(status) > 0 {
		statuses[code] = status[0]
	}
}
