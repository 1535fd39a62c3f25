package resp

import (
	"encoding/json"
	"net/http"

	"github.com/ncobase/tablekit/ecode"
)

// Exception represents the response structure.
type Exception struct {
	Status  int    `json:"status,omitempty"`  // HTTP status
	Code    int    `json:"code,omitempty"`    // Business code
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Error details
}

// New builds an exception for a business code, taking the HTTP status and
// default message from ecode.
func New(code int, message string, errs ...any) *Exception {
	if message == "" {
		message = ecode.Text(code)
	}
	e := &Exception{
		Status:  ecode.ToHTTPStatus(code),
		Code:    code,
		Message: message,
	}
	if len(errs) > 0 {
		e.Errors = errs[0]
	}
	return e
}

// BadRequest is a 400 exception.
func BadRequest(message string, errs ...any) *Exception {
	return New(ecode.RequestErr, message, errs...)
}

// NotFound is a 404 exception.
func NotFound(message string, errs ...any) *Exception {
	return New(ecode.NothingFound, message, errs...)
}

// InternalServer is a 500 exception.
func InternalServer(message string, errs ...any) *Exception {
	return New(ecode.ServerErr, message, errs...)
}

// Success writes data as a 200 JSON body. A string payload is wrapped as
// {"message": ...}; no payload writes {"message": "ok"}.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode writes a success body with a custom status code.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	var body any = map[string]any{"message": "ok"}
	if len(data) > 0 && data[0] != nil {
		body = data[0]
		if msg, ok := body.(string); ok {
			body = map[string]any{"message": msg}
		}
	}
	writeJSON(w, statusCode, body)
}

// Fail writes r as an error body. A nil r is a server error.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = InternalServer("")
	}
	statusCode, result := buildFailureResponse(r)
	writeJSON(w, statusCode, result)
}

// buildFailureResponse fills unset fields with request-error defaults.
func buildFailureResponse(r *Exception) (int, *Exception) {
	status := http.StatusBadRequest
	code := ecode.RequestErr

	if r.Status != 0 {
		status = r.Status
	}
	if r.Code != 0 {
		code = r.Code
	}
	message := r.Message
	if message == "" {
		message = ecode.Text(code)
	}

	return status, &Exception{
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	}
}

// writeJSON sets the content type before the status line goes out.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
