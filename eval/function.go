package eval

import (
	"strconv"

	"github.com/pianohacker/scarab/value"
)

// Unbounded marks a function's MaxArgs as accepting arbitrarily many
// arguments — the Go analogue of the original C implementation's use of
// LONG_MAX as a "no upper bound" sentinel (spec.md §4.5.4).
const Unbounded = -1

// NativeFunc is a builtin's Go implementation. argv holds already-evaluated
// arguments for a non-direct function, or raw forms for a direct one; the
// bool result is false exactly when the context's error slot has been set.
type NativeFunc func(ctx *Context, argv []value.Value) (value.Value, bool)

// Function is scarab's callable value: either native (NativeFn set, Body
// nil) or source-defined (Body set, NativeFn nil). It implements
// value.FunctionValue so value.Inspect can render it without importing this
// package.
type Function struct {
	Name     string
	MinArgs  int
	MaxArgs  int // Unbounded for "N or more"
	IsDirect bool

	NativeFn NativeFunc
	Body     value.Value
	Params   []*value.Symbol

	// Scope is non-nil iff this is a source-defined function (spec.md §3's
	// function invariant): the lexical environment captured at definition
	// time, reused as the parent of each fresh call scope.
	Scope *Scope
}

func (*Function) Kind() value.Kind { return value.KindFunction }

func (f *Function) FuncName() string { return f.Name }

// NewNativeFunction builds a builtin.
func NewNativeFunction(name string, min, max int, direct bool, fn NativeFunc) *Function {
	return &Function{Name: name, MinArgs: min, MaxArgs: max, IsDirect: direct, NativeFn: fn}
}

// NewSourceFunction builds a function defined by scarab source (`def`,
// `def-direct`, `lambda`, `def-method`): arity is fixed to exactly
// len(params), matching the original implementation's `_create_func`.
func NewSourceFunction(name string, params []*value.Symbol, body value.Value, scope *Scope, direct bool) *Function {
	return &Function{
		Name:     name,
		MinArgs:  len(params),
		MaxArgs:  len(params),
		IsDirect: direct,
		Params:   params,
		Body:     body,
		Scope:    scope,
	}
}

// ArityDescription renders the expected-argument-count clause of an
// invalid-call message, matching the three shapes spec.md §4.5.4 requires.
func (f *Function) ArityDescription() string {
	switch {
	case f.MaxArgs == Unbounded:
		return strconv.Itoa(f.MinArgs) + " or more"
	case f.MinArgs == f.MaxArgs:
		return strconv.Itoa(f.MinArgs)
	default:
		return "between " + strconv.Itoa(f.MinArgs) + " and " + strconv.Itoa(f.MaxArgs)
	}
}
