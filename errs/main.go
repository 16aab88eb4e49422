package errs

import (
	"errors"
	"fmt"
	"strconv"
)

func NewMsg(code int, format string, a ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, a...)}
}

func New(code int, err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: code, Msg: err.Error(), err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("[%s] %s", e.CodeName(), e.Msg)
}

func (e *Error) Short() string {
	if e == nil {
		return ""
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

func (e *Error) CodeName() string {
	if name, ok := codeNames[e.Code]; ok {
		return name
	}
	return strconv.Itoa(e.Code)
}

/*
Retryable reports whether the failure is transient: network errors and 5xx/429 replies.
Structural failures (bad payload shape, decode errors) never retry.
*/
func (e *Error) Retryable() bool {
	if e == nil {
		return false
	}
	if e.Code == CodeNetFail {
		return true
	}
	return e.BizCode == 429 || e.BizCode >= 500
}

func (e *Error) Structural() bool {
	return e != nil && (e.Code == CodeInvalidResponse || e.Code == CodeUnmarshalFail)
}
