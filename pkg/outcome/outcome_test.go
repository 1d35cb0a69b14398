package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Inspector[string, error] = Outcome[string, error]{}

func TestOfValue(t *testing.T) {
	t.Parallel()

	expected := "expectedValue"

	result := OfValue[string, any](expected)

	assert.True(t, result.IsSuccess())
	assert.False(t, result.IsFailure())

	v, ok := result.Value()
	require.True(t, ok)
	assert.Equal(t, expected, v)

	_, ok = result.ErrorDescriptor()
	assert.False(t, ok)
}

func TestOfError(t *testing.T) {
	t.Parallel()

	expected := "expectedErrorDescriptor"

	result := OfError[string, any](expected)

	assert.False(t, result.IsSuccess())
	assert.True(t, result.IsFailure())

	d, ok := result.ErrorDescriptor()
	require.True(t, ok)
	assert.Equal(t, expected, d)

	_, ok = result.Value()
	assert.False(t, ok)
}

// A success holding the zero value is still a success; presence follows the
// case, not the payload.
func TestValue_ZeroValueSuccess(t *testing.T) {
	t.Parallel()

	success := OfValue[int, string](0)
	v, ok := success.Value()
	assert.True(t, ok)
	assert.Zero(t, v)

	failure := OfError[int, string]("broken")
	v, ok = failure.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, OfValue[string, int]("a").Equal(OfValue[string, int]("a")))
	assert.True(t, OfError[string, int](7).Equal(OfError[string, int](7)))

	assert.False(t, OfValue[string, int]("a").Equal(OfValue[string, int]("b")))
	assert.False(t, OfError[string, int](7).Equal(OfError[string, int](8)))
	assert.False(t, OfValue[int, int](1).Equal(OfError[int, int](1)))
}

func TestEqual_IgnoresProvenance(t *testing.T) {
	t.Parallel()

	first := OfValue[string, int]("same")
	second := OfValue[string, int]("same")

	assert.NotEqual(t, first.Id(), second.Id())
	assert.True(t, first.Equal(second))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	success := OfValue[string, int]("payload")
	v, ok := success.Value()
	require.True(t, ok)
	assert.True(t, OfValue[string, int](v).Equal(success))

	failure := OfError[string, int](42)
	d, ok := failure.ErrorDescriptor()
	require.True(t, ok)
	assert.True(t, OfError[string, int](d).Equal(failure))
}

func TestProvenance(t *testing.T) {
	t.Parallel()

	result := OfValue[string, int]("v")

	assert.NotZero(t, result.Id())
	assert.False(t, result.CreatedAt().IsZero())
	assert.Equal(t, result.CreatedAt(), result.CreatedAt().UTC())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Outcome(value=true)", OfValue[bool, error](true).String())
	assert.Equal(t, "Outcome(errorDescriptor=boom)", OfError[bool, string]("boom").String())
}
