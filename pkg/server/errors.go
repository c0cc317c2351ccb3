package server

import "fmt"

// ErrorCode classifies a service failure for transport mapping.
type ErrorCode uint

const (
	ErrInternalServerError ErrorCode = iota
	ErrNotFound
	ErrBadParamInput
)

// Error wraps a service error with an application error code.
type Error struct {
	appErrCode ErrorCode
	svcErr     error
}

func NewError(code ErrorCode, err error) *Error {
	return &Error{appErrCode: code, svcErr: err}
}

// WrapErrorf returns a coded error wrapping orig with a formatted message.
func WrapErrorf(orig error, code ErrorCode, format string, a ...interface{}) error {
	return &Error{
		appErrCode: code,
		svcErr:     fmt.Errorf("%s: %w", fmt.Sprintf(format, a...), orig),
	}
}

func (e *Error) Error() string {
	return e.svcErr.Error()
}

func (e *Error) Unwrap() error {
	return e.svcErr
}

func (e *Error) AppErrCode() ErrorCode {
	return e.appErrCode
}
