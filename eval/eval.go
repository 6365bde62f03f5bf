package eval

import "github.com/pianohacker/scarab/value"

// Eval implements spec.md §4.5.3's evaluation rules. It returns (nil,
// false) exactly when ctx's error slot has been set — every caller that
// evaluates a sub-form must check and propagate that, the universal failure
// protocol described in spec.md §4.5.2 and §7.
func Eval(ctx *Context, form value.Value) (value.Value, bool) {
	switch form.Kind() {
	case value.KindNil, value.KindInt, value.KindString,
		value.KindFunction, value.KindRecordType, value.KindRecord:
		// Atomic values evaluate to themselves (spec.md §4.1).
		return form, true

	case value.KindSymbol:
		sym := form.(*value.Symbol)
		v, ok := ctx.Scope().Lookup(sym)
		if !ok {
			return ctx.Fail("undefined-variable", "%s", sym.Name())
		}
		return v, true

	case value.KindQuoted:
		return form.(*value.Quoted).Inner, true

	case value.KindCell:
		return evalCell(ctx, form.(*value.Cell))

	default:
		panic("eval: Eval does not know kind " + form.Kind().String())
	}
}

func evalCell(ctx *Context, form *value.Cell) (value.Value, bool) {
	head, ok := Eval(ctx, form.Left)
	if !ok {
		return nil, false
	}

	fn, isFunc := head.(*Function)
	if !isFunc {
		if value.Length(form) == 1 {
			// A list whose head evaluates to a non-function, with no
			// further elements, returns that head unmodified (spec.md §8
			// boundary case).
			return head, true
		}
		return ctx.Fail("not-func", "Tried to evaluate %s as a function", value.Inspect(head))
	}

	argv := value.ToSlice(form.Right)
	return Apply(ctx, fn, argv)
}

// EvalAll evaluates each form in list in order, stopping at the first
// failure; used by the REPL and `run` to drive a parsed program's top-level
// open list one form at a time.
func EvalAll(ctx *Context, forms value.Value) ([]value.Value, bool) {
	var results []value.Value
	ok := true
	value.Each(forms, func(form value.Value) {
		if !ok {
			return
		}
		var v value.Value
		v, ok = Eval(ctx, form)
		if ok {
			results = append(results, v)
		}
	})
	return results, ok
}
