package eval

import "github.com/pianohacker/scarab/value"

// Apply implements spec.md §4.5.4. argv is mutated in place when fn is not
// direct (each element replaced by its evaluated value) before the arity
// check runs, matching the original's evaluate-then-check-arity order.
func Apply(ctx *Context, fn *Function, argv []value.Value) (value.Value, bool) {
	if !fn.IsDirect {
		for i, arg := range argv {
			v, ok := Eval(ctx, arg)
			if !ok {
				return nil, false
			}
			argv[i] = v
		}
	}

	argc := len(argv)
	if argc < fn.MinArgs || (fn.MaxArgs != Unbounded && argc > fn.MaxArgs) {
		return ctx.Fail("invalid-call", "Called %s with %d arguments, expected %s",
			fn.Name, argc, fn.ArityDescription())
	}

	if fn.NativeFn != nil {
		return fn.NativeFn(ctx, argv)
	}

	prevScope := ctx.Scope()
	callScope := NewScope(fn.Scope)
	for i, param := range fn.Params {
		callScope.Add(param, argv[i])
	}
	ctx.SetScope(callScope)

	result, ok := Eval(ctx, fn.Body)
	ctx.SetScope(prevScope)

	return result, ok
}
