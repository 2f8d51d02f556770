package result

import (
	"fmt"
	"strconv"

	"github.com/zeebo/errs"
)

var Error = errs.Class("result")

// Coder is implemented by errors that carry their own string code.
type Coder interface {
	ErrorCode() string
}

// IntCoder is implemented by errors that carry a numeric code.
type IntCoder interface {
	ErrorCode() int
}

// FailedError is returned by Get and MustGet on a failed Result.
type FailedError struct {
	Message string
	Code    string
	Cause   error
}

func (e *FailedError) Error() string {
	return e.Message
}

func (e *FailedError) ErrorCode() string {
	return e.Code
}

func (e *FailedError) Unwrap() error {
	return e.Cause
}

// PanicError holds a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

// codeOf walks the error chain depth first and returns the first non empty
// code.
func codeOf(err error) string {
	switch c := err.(type) {
	case nil:
		return ""
	case Coder:
		if code := c.ErrorCode(); code != "" {
			return code
		}
	case IntCoder:
		return strconv.Itoa(c.ErrorCode())
	}

	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return codeOf(u.Unwrap())
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if code := codeOf(e); code != "" {
				return code
			}
		}
	}

	return ""
}

func panicToError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}

	return &PanicError{Value: v}
}
