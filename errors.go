package nixdoc

import (
	"errors"
	"fmt"
)

// Application error codes. These map to the failure modes a caller of
// DocSource.Update can meaningfully distinguish.
const (
	EFETCH    = "fetch"       // external build invocation failed
	EPARSE    = "parse"       // options document unreadable or malformed
	EENV      = "environment" // required environment variable missing
	EINVALID  = "invalid"     // validation failed
	ENOTFOUND = "not_found"   // entity does not exist
	EINTERNAL = "internal"    // internal error
)

// Error represents an application-specific error. Application errors can
// be unwrapped by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("nixdoc error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf returns an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
