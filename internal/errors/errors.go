// Package errors provides the structured error type used across keymatch.
package errors

import "fmt"

// Error is the structured error type for keymatch. It carries a stable
// code so callers can distinguish recoverable conditions (a malformed
// query) from hard failures (index I/O) without string matching.
type Error struct {
	// Code is the unique error code (e.g. "ERR_301_QUERY_SYNTAX").
	Code string

	// Message is the human-readable error message.
	Message string

	// Cause is the underlying error, if any.
	Cause error

	// Retryable indicates the operation may succeed if retried with
	// adjusted input.
	Retryable bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors by code, enabling errors.Is against sentinel values
// built with New.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates an Error with the given code and message. The retryable
// flag is derived from the code.
func New(code, message string, cause error) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Cause:     cause,
		Retryable: isRetryableCode(code),
	}
}

// Wrap creates an Error from an existing error, keeping its message.
// Returns nil when err is nil.
func Wrap(code string, err error) *Error {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// QuerySyntaxError marks a MATCH expression the index provider rejected.
func QuerySyntaxError(err error) *Error {
	return Wrap(ErrCodeQuerySyntax, err)
}

// IndexIOError marks an index storage failure.
func IndexIOError(message string, cause error) *Error {
	return New(ErrCodeIndexIO, message, cause)
}
