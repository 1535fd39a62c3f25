package table

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

// Request is the per-render view of an incoming request: its context,
// which carries identity for authorization, and its query parameters.
type Request struct {
	ctx      context.Context
	params   url.Values
	settings Settings
}

// NewRequest returns a request over params. A nil ctx means context.Background.
func NewRequest(ctx context.Context, params url.Values) *Request {
	if ctx == nil {
		ctx = context.Background()
	}
	if params == nil {
		params = url.Values{}
	}
	return &Request{ctx: ctx, params: params}
}

// FromHTTP builds a request from r's context and URL query.
func FromHTTP(r *http.Request) *Request {
	return NewRequest(r.Context(), r.URL.Query())
}

// Context returns the request context.
func (r *Request) Context() context.Context { return r.ctx }

// Params returns the raw query parameters.
func (r *Request) Params() url.Values { return r.params }

// Settings returns the settings the request is rendered with, never nil.
func (r *Request) Settings() Settings {
	if r.settings == nil {
		return MapSettings(nil)
	}
	return r.settings
}

// WithSettings returns a shallow copy of r using s.
func (r *Request) WithSettings(s Settings) *Request {
	next := *r
	next.settings = s
	return &next
}

// Input returns the trimmed first value of key, or "".
func (r *Request) Input(key string) string {
	return strings.TrimSpace(r.params.Get(key))
}

// Integer returns key parsed as a decimal integer, or 0 when it is absent
// or not a number.
func (r *Request) Integer(key string) int {
	s := r.Input(key)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(strings.TrimPrefix(s, "-"), "0")
	if s == "" {
		return 0
	}
	n, err := cast.ToIntE(s)
	if err != nil {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
