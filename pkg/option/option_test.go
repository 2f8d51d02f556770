package option

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philanthropists/fpkit/pkg/result"
)

func Test_SomeAndNoneAreExclusive(t *testing.T) {
	s := Some(1)
	assert.True(t, s.IsSome())
	assert.False(t, s.IsNone())

	n := None[int]()
	assert.False(t, n.IsSome())
	assert.True(t, n.IsNone())

	var zero Option[int]
	assert.True(t, zero.IsNone())
}

func Test_SomeNilIsPresent(t *testing.T) {
	assert.True(t, Some[*int](nil).IsSome())
	assert.True(t, Some[any](nil).IsSome())
	assert.True(t, FromNullable[int](nil).IsNone())
}

func Test_FromNullable(t *testing.T) {
	v := 5
	o := FromNullable(&v)
	require.True(t, o.IsSome())
	assert.Equal(t, 5, o.MustGet())

	v = 6
	assert.Equal(t, 5, o.MustGet())
}

func Test_FromOk(t *testing.T) {
	m := map[string]int{"a": 1}

	v, ok := m["a"]
	assert.Equal(t, Some(1), FromOk(v, ok))

	v, ok = m["b"]
	assert.Equal(t, None[int](), FromOk(v, ok))
}

func Test_GetOnNoneReturnsErrNoValue(t *testing.T) {
	v, err := Some("x").Get()
	assert.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = None[string]().Get()
	assert.ErrorIs(t, err, ErrNoValue)
	assert.True(t, Error.Has(err))

	var failed *result.FailedError
	assert.False(t, errors.As(err, &failed))
}

func Test_MustGetPanicsWithErrNoValue(t *testing.T) {
	assert.Equal(t, 1, Some(1).MustGet())
	assert.PanicsWithValue(t, ErrNoValue, func() {
		None[int]().MustGet()
	})
}

func Test_Getters(t *testing.T) {
	assert.Equal(t, 1, Some(1).GetOrDefault(-1))
	assert.Equal(t, -1, None[int]().GetOrDefault(-1))

	calls := 0
	fallback := func() int {
		calls++
		return -1
	}
	assert.Equal(t, 1, Some(1).GetOrElse(fallback))
	assert.Equal(t, 0, calls)
	assert.Equal(t, -1, None[int]().GetOrElse(fallback))
	assert.Equal(t, 1, calls)

	p := Some(1).GetOrNull()
	require.NotNil(t, p)
	assert.Equal(t, 1, *p)
	assert.Nil(t, None[int]().GetOrNull())

	v, ok := Some(2).Tuple()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func Test_ToResult(t *testing.T) {
	assert.True(t, Some(1).ToResult().IsSuccess())
	assert.Equal(t, 1, Some(1).ToResult("unused").MustGet())

	_, err := None[int]().ToResult("missing user").Get()
	var failed *result.FailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "missing user", failed.Message)

	_, err = None[int]().ToResult().Get()
	assert.EqualError(t, err, DefaultMissingMessage)
}

func Test_FromResult(t *testing.T) {
	assert.Equal(t, Some(3), FromResult(result.Success(3)))
	assert.Equal(t, None[int](), FromResult(result.Fail[int]("boom")))
}

func Test_String(t *testing.T) {
	assert.Equal(t, "Some(5)", Some(5).String())
	assert.Equal(t, "None", None[int]().String())
}
