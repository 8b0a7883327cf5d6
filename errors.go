package profgen

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These map domain failures to machine-readable codes that callers can
// branch on without string matching. The CLI translates them to exit codes.
const (
	ECOMPLIANCE   = "compliance"   // audit failed at or above the severity threshold
	ECONFIG       = "config"       // invalid or missing configuration
	EINTERNAL     = "internal"     // unexpected internal error
	EINVALID      = "invalid"      // validation failed or input malformed
	ENOTFOUND     = "not_found"    // entity does not exist
	EUNAUTHORIZED = "unauthorized" // authentication rejected
	EUNAVAILABLE  = "unavailable"  // page or section unreachable
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error code constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("profgen error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns an *Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err looking for an *Error and returns its code.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err looking for an *Error and returns its message.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
