// Package ecode defines the business error codes carried in API error
// envelopes and small helpers for composing field-level messages.
//
// # Error Code Convention
//
//   - 0: Success (OK)
//   - -400 to -499: Request and resource errors
//   - -500+: Server errors
//
// # Getting Error Messages
//
//	message := ecode.Text(ecode.ParamErr)
//	// Returns: "Invalid parameters"
//
//	ecode.FieldIsInvalid("page_size")
//	// Returns: "page_size invalid"
//
// # HTTP Status Mapping
//
//	ecode.ToHTTPStatus(ecode.NothingFound) // 404
//
// # Custom Error Codes
//
//	ecode.Register(-1001, "Pool is degraded")
package ecode
