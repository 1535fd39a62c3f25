// Package resp writes JSON responses.
//
// Successful responses carry the payload as the body. Failures share one
// shape, with the business code from ecode:
//
//	{"code": -1102, "message": "Invalid filter", "errors": {...}}
package resp
