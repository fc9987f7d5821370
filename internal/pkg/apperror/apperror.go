package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error so the transport layer can pick a status code
// without string matching.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidArgument
	KindUnsupportedFormat
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func UnsupportedFormat(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnsupportedFormat, Message: fmt.Sprintf(format, args...)}
}

func Internal(err error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// IsKind reports whether err (or anything it wraps) is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool          { return IsKind(err, KindNotFound) }
func IsInvalidArgument(err error) bool   { return IsKind(err, KindInvalidArgument) }
func IsUnsupportedFormat(err error) bool { return IsKind(err, KindUnsupportedFormat) }
