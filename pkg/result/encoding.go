package result

import (
	"encoding/json"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type successForm[T any] struct {
	Success bool `json:"success" yaml:"success"`
	Value   T    `json:"value" yaml:"value"`
}

type failureForm struct {
	Success bool    `json:"success" yaml:"success"`
	Message string  `json:"message" yaml:"message"`
	Code    *string `json:"code" yaml:"code"`
}

type wireForm[T any] struct {
	Success *bool   `json:"success" yaml:"success"`
	Value   T       `json:"value" yaml:"value"`
	Message *string `json:"message" yaml:"message"`
	Code    *string `json:"code" yaml:"code"`
}

func (f Failure) form() failureForm {
	form := failureForm{Message: f.message}
	if f.code != "" {
		code := f.code
		form.Code = &code
	}

	return form
}

func (r Result[T]) form() any {
	if r.failure != nil {
		return r.failure.form()
	}

	return successForm[T]{Success: true, Value: r.value}
}

// ToMap renders r in its plain structured form. The cause is never part of
// it.
func (r Result[T]) ToMap() map[string]any {
	if r.failure != nil {
		var code any
		if r.failure.code != "" {
			code = r.failure.code
		}

		return map[string]any{
			"success": false,
			"message": r.failure.message,
			"code":    code,
		}
	}

	return map[string]any{
		"success": true,
		"value":   r.value,
	}
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.form())
}

func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var w wireForm[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return Error.Wrap(err)
	}

	return r.fromWire(w)
}

func (r Result[T]) MarshalYAML() (interface{}, error) {
	return r.form(), nil
}

func (r *Result[T]) UnmarshalYAML(node *yaml.Node) error {
	var w wireForm[T]
	if err := node.Decode(&w); err != nil {
		return Error.Wrap(err)
	}

	return r.fromWire(w)
}

func (r *Result[T]) fromWire(w wireForm[T]) error {
	if w.Success == nil {
		return Error.New("missing %q field", "success")
	}

	if *w.Success {
		*r = Success(w.Value)
		return nil
	}

	if w.Message == nil {
		return Error.New("missing %q field", "message")
	}

	var opts []FailureOption
	if w.Code != nil {
		opts = append(opts, WithCode(*w.Code))
	}
	*r = Fail[T](*w.Message, opts...)

	return nil
}

func (f Failure) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", f.message)
	if f.code != "" {
		enc.AddString("code", f.code)
	}
	if f.cause != nil {
		enc.AddString("cause", f.cause.Error())
	}

	return nil
}

// MarshalLogObject lets r be logged with zap.Object. Unlike the other forms,
// the log form includes the cause.
func (r Result[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("success", r.failure == nil)
	if r.failure != nil {
		return r.failure.MarshalLogObject(enc)
	}

	return enc.AddReflected("value", r.value)
}
