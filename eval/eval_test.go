package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pianohacker/scarab/value"
)

func list(vs ...value.Value) value.Value {
	return value.FromSlice(vs)
}

func call(name string, args ...value.Value) value.Value {
	return value.NewCell(value.Intern(name), value.FromSlice(args))
}

func TestEvalAtomsAreSelfEvaluating(t *testing.T) {
	ctx := NewContext()

	test := func(v value.Value) func(*testing.T) {
		return func(t *testing.T) {
			result, ok := Eval(ctx, v)
			require.True(t, ok)
			assert.Same(t, v, result)
		}
	}

	t.Run("nil", test(value.Nil))
	t.Run("int", test(value.NewInt(3)))
	t.Run("string", test(value.NewString("hi")))
}

func TestEvalQuotedReturnsInnerUnevaluated(t *testing.T) {
	ctx := NewContext()
	inner := call("+", value.NewInt(1), value.NewInt(2))

	result, ok := Eval(ctx, value.NewQuoted(inner))
	require.True(t, ok)
	assert.Same(t, inner, result)
}

func TestEvalUndefinedVariableFails(t *testing.T) {
	ctx := NewContext()

	_, ok := Eval(ctx, value.Intern("foo"))
	require.False(t, ok)

	errVal := ctx.Error()
	cell, isCell := errVal.(*value.Cell)
	require.True(t, isCell)
	assert.Equal(t, value.Intern("undefined-variable"), cell.Left)
}

func TestEvalCallNonFunctionHeadWithNoArgsReturnsHead(t *testing.T) {
	ctx := NewContext()
	form := value.NewCell(value.NewInt(5), value.Nil)

	result, ok := Eval(ctx, form)
	require.True(t, ok)
	assert.Equal(t, int64(5), value.AsInt(result))
}

func TestEvalCallNonFunctionHeadWithArgsFails(t *testing.T) {
	ctx := NewContext()
	form := list(value.NewInt(5), value.NewInt(6))

	_, ok := Eval(ctx, form)
	require.False(t, ok)
}

func TestScopeShadowing(t *testing.T) {
	ctx := NewContext()
	ctx.GlobalScope().Add(value.Intern("x"), value.NewInt(1))

	inner := NewScope(ctx.Scope())
	inner.Add(value.Intern("x"), value.NewInt(2))
	ctx.SetScope(inner)

	v, ok := Eval(ctx, value.Intern("x"))
	require.True(t, ok)
	assert.Equal(t, int64(2), value.AsInt(v))

	ctx.PopScope()
	v, ok = Eval(ctx, value.Intern("x"))
	require.True(t, ok)
	assert.Equal(t, int64(1), value.AsInt(v))
}

func TestEvalAllStopsAtFirstFailure(t *testing.T) {
	ctx := NewContext()
	forms := list(value.NewInt(1), value.Intern("undefined"), value.NewInt(3))

	results, ok := EvalAll(ctx, forms)
	require.False(t, ok)
	assert.Equal(t, []value.Value{value.NewInt(1)}, results)
}
