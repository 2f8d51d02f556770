package result

import "fmt"

// Failure is the failed side of a Result. Code is empty when no code was
// given; Cause is nil unless the failure was built from an error.
type Failure struct {
	message string
	code    string
	cause   error
}

// FailureOption sets an optional field of a Failure while it is built.
type FailureOption func(*Failure)

// WithCode sets the failure code. An empty code means no code.
func WithCode(code string) FailureOption {
	return func(f *Failure) {
		f.code = code
	}
}

// WithCause records the error the failure originated from.
func WithCause(err error) FailureOption {
	return func(f *Failure) {
		f.cause = err
	}
}

func newFailure(message string, opts ...FailureOption) *Failure {
	f := &Failure{message: message}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f Failure) Message() string {
	return f.message
}

func (f Failure) Code() string {
	return f.code
}

func (f Failure) HasCode() bool {
	return f.code != ""
}

func (f Failure) Cause() error {
	return f.cause
}

// Err converts the failure into the error returned by Result.Get.
func (f Failure) Err() error {
	return &FailedError{
		Message: f.message,
		Code:    f.code,
		Cause:   f.cause,
	}
}

func (f Failure) String() string {
	if f.code == "" {
		return fmt.Sprintf("%q", f.message)
	}

	return fmt.Sprintf("%q, code=%s", f.message, f.code)
}
