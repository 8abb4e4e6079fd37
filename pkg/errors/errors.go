package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure class. Tests and the CLI branch on codes,
// never on message text.
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Precondition errors
	ErrShellUnsupported    ErrorCode = "SHELL_UNSUPPORTED"
	ErrWorkdirMissing      ErrorCode = "WORKDIR_MISSING"
	ErrHomeUnset           ErrorCode = "HOME_UNSET"
	ErrInterpreterNotFound ErrorCode = "INTERPRETER_NOT_FOUND"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
	ErrConfigLine ErrorCode = "CONFIG_LINE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"

	// Process errors
	ErrExec ErrorCode = "EXEC"
)

// Error carries a code, the one-line message shown to the user and
// optional diagnostic details for logs.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error renders code, message and cause for logs. Terminal output uses
// UserMessage instead.
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the cause, if any
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New returns an Error without a cause
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap attaches code and message to err. It returns a nil *Error for a
// nil err, so callers must not chain WithDetail or return the result as an
// error without checking err first.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf is Wrap with a formatted message; the same nil rule applies.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail records a key/value for logs and returns e for chaining
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether any *Error in err's chain has code
func IsErrorCode(err error, code ErrorCode) bool {
	var bootErr *Error
	if errors.As(err, &bootErr) {
		return bootErr.Code == code
	}
	return false
}

// GetErrorCode returns the code of the first *Error in err's chain, or
// ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var bootErr *Error
	if errors.As(err, &bootErr) {
		return bootErr.Code
	}
	return ErrUnknown
}

// UserMessage returns the one-line message meant for the terminal. For an
// *Error that is its Message without the code prefix or wrapped cause.
func UserMessage(err error) string {
	var bootErr *Error
	if errors.As(err, &bootErr) {
		return bootErr.Message
	}
	return err.Error()
}
