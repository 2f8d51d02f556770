package option

import (
	"encoding/json"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type form struct {
	HasValue bool `json:"has_value" yaml:"has_value"`
	Value    any  `json:"value" yaml:"value"`
}

type wireForm[T any] struct {
	HasValue *bool `json:"has_value" yaml:"has_value"`
	Value    T     `json:"value" yaml:"value"`
}

func (o Option[T]) form() form {
	if !o.ok {
		return form{}
	}

	return form{HasValue: true, Value: o.value}
}

// ToMap renders o as {"has_value": bool, "value": T or nil}.
func (o Option[T]) ToMap() map[string]any {
	f := o.form()
	return map[string]any{
		"has_value": f.HasValue,
		"value":     f.Value,
	}
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.form())
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	var w wireForm[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return Error.Wrap(err)
	}

	return o.fromWire(w)
}

func (o Option[T]) MarshalYAML() (interface{}, error) {
	return o.form(), nil
}

func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	var w wireForm[T]
	if err := node.Decode(&w); err != nil {
		return Error.Wrap(err)
	}

	return o.fromWire(w)
}

func (o *Option[T]) fromWire(w wireForm[T]) error {
	if w.HasValue == nil {
		return Error.New("missing %q field", "has_value")
	}

	*o = FromOk(w.Value, *w.HasValue)
	return nil
}

func (o Option[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("has_value", o.ok)
	if !o.ok {
		return nil
	}

	return enc.AddReflected("value", o.value)
}
