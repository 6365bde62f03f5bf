package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilIsSingleton(t *testing.T) {
	assert.True(t, IsNil(Nil))
	assert.False(t, IsNil(NewInt(0)))
	assert.Same(t, Nil, Nil)
}

func TestAtomicity(t *testing.T) {
	test := func(v Value, expected bool) func(*testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, expected, IsAtomic(v))
		}
	}

	t.Run("nil", test(Nil, true))
	t.Run("int", test(NewInt(3), true))
	t.Run("string", test(NewString("hi"), true))
	t.Run("quoted", test(NewQuoted(NewInt(3)), true))
	t.Run("symbol", test(Intern("x"), false))
	t.Run("cell", test(NewCell(Nil, Nil), false))
}

func TestCheckedAccessorsPanicOnMismatch(t *testing.T) {
	require.Panics(t, func() { AsInt(NewString("not an int")) })
	require.Panics(t, func() { AsString(NewInt(3)) })
	require.Panics(t, func() { AsQuoted(NewInt(3)) })
}

func TestCheckedAccessorsReturnPayload(t *testing.T) {
	assert.EqualValues(t, 42, AsInt(NewInt(42)))
	assert.Equal(t, "hello", AsString(NewString("hello")))
	assert.Equal(t, Value(NewInt(3)), AsQuoted(NewQuoted(NewInt(3))))
}

func TestKindNamesComplete(t *testing.T) {
	for k := KindNil; k <= KindRecord; k++ {
		assert.NotEmpty(t, k.String())
	}
}
