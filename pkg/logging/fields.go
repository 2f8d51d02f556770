package logging

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/Philanthropists/fpkit/pkg/option"
	"github.com/Philanthropists/fpkit/pkg/result"
)

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Uint[S ~string, T constraints.Unsigned](s S, v T) Field {
	return zap.Uint64(string(s), uint64(v))
}

func Float[S ~string, T constraints.Float](s S, v T) Field {
	return zap.Float64(string(s), float64(v))
}

func Error(err error) Field {
	return zap.Error(err)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

func Option[S ~string, T any](s S, o option.Option[T]) Field {
	return zap.Object(string(s), o)
}

func Result[S ~string, T any](s S, r result.Result[T]) Field {
	return zap.Object(string(s), r)
}

func Failure[S ~string](s S, f result.Failure) Field {
	return zap.Object(string(s), f)
}
