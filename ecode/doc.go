// Package ecode defines the numeric error codes returned in API responses
// and maps them to messages and HTTP statuses.
//
// Error codes are grouped by range:
//   - 0: Success (OK)
//   - -100 to -199: Authentication/authorization errors
//   - -400 to -499: Request and resource errors
//   - -500+: Server errors
//
// Table rendering adds its own range starting at -1100:
//
//	ecode.Text(ecode.FilterErr)          // "Invalid filter"
//	ecode.ToHTTPStatus(ecode.FilterErr)  // 400
//
// Register application specific codes with Register:
//
//	ecode.Register(-1201, "Export in progress")
package ecode
