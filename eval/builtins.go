package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/pianohacker/scarab/value"
)

// registerBuiltins populates the shared, read-only builtins scope with
// every function in spec.md §4.5.5. It runs exactly once per process
// (rootScope's sync.Once).
func registerBuiltins(scope *Scope) {
	reg := func(name string, min, max int, direct bool, fn NativeFunc) {
		scope.Add(value.Intern(name), NewNativeFunction(name, min, max, direct, fn))
	}

	reg("+", 1, Unbounded, false, builtinAdd)
	reg("=", 2, 2, true, builtinSet)
	reg("quote", 1, 1, true, builtinQuote)
	reg("eval", 1, 1, false, builtinEval)
	reg("inspect", 1, 1, false, builtinInspect)
	reg("inspect-direct", 1, 1, true, builtinInspect)
	reg("let", 2, 2, true, builtinLet)
	reg("lambda", 2, 2, true, builtinLambda)
	reg("def", 3, 3, true, builtinDef(false))
	reg("def-direct", 3, 3, true, builtinDef(true))
	reg("def-method", 4, 4, true, builtinDefMethod)
	reg("@", 2, Unbounded, true, builtinDispatch)
	reg("first", 1, 1, false, builtinFirst)
	reg("rest", 1, 1, false, builtinRest)
	reg("atom?", 1, 1, false, builtinAtomP)
	reg("print", 0, Unbounded, false, builtinPrint(os.Stdout))
	reg("record-type", 2, 2, true, builtinRecordType)
	reg("make", 1, Unbounded, false, builtinMake)
	reg("get-key", 2, 2, true, builtinGetKey)

	// Built-in kind names are bound to themselves so that `(def-method
	// string greet (self) ...)` can evaluate its type argument the same
	// way it would evaluate a record-type variable.
	for _, name := range []string{"int", "string", "symbol", "cell", "function"} {
		scope.Add(value.Intern(name), value.Intern(name))
	}
}

func builtinAdd(ctx *Context, argv []value.Value) (value.Value, bool) {
	var sum int64
	for _, v := range argv {
		sum += value.AsInt(v)
	}
	return value.NewInt(sum), true
}

// builtinSet implements `=`: (= name value) evaluates value and binds name
// in the current scope. name arrives unevaluated (the builtin is direct).
func builtinSet(ctx *Context, argv []value.Value) (value.Value, bool) {
	name, ok := argv[0].(*value.Symbol)
	if !ok {
		return ctx.Fail("bad-self", "= requires a symbol name, got %s", value.Inspect(argv[0]))
	}
	v, ok := Eval(ctx, argv[1])
	if !ok {
		return nil, false
	}
	ctx.Scope().Add(name, v)
	return value.Nil, true
}

func builtinQuote(ctx *Context, argv []value.Value) (value.Value, bool) {
	return argv[0], true
}

func builtinEval(ctx *Context, argv []value.Value) (value.Value, bool) {
	return Eval(ctx, argv[0])
}

func builtinInspect(ctx *Context, argv []value.Value) (value.Value, bool) {
	return value.NewString(value.Inspect(argv[0])), true
}

// builtinLet implements (let {bindings} body): a new scope, each
// (name value) binding's value evaluated against the outer scope (so
// bindings never see each other, only the body does), then body evaluated
// in the new scope.
func builtinLet(ctx *Context, argv []value.Value) (value.Value, bool) {
	letScope := NewScope(ctx.Scope())

	ok := true
	value.Each(argv[0], func(binding value.Value) {
		if !ok {
			return
		}
		pair, isCell := binding.(*value.Cell)
		if !isCell {
			_, ok = ctx.Fail("bad-self", "let binding must be (name value), got %s", value.Inspect(binding))
			return
		}
		name, isSym := pair.Left.(*value.Symbol)
		valueForm, hasValue := pair.Right.(*value.Cell)
		if !isSym || !hasValue {
			_, ok = ctx.Fail("bad-self", "let binding must be (name value), got %s", value.Inspect(binding))
			return
		}
		v, evalOk := Eval(ctx, valueForm.Left)
		if !evalOk {
			ok = false
			return
		}
		letScope.Add(name, v)
	})

	if !ok {
		return nil, false
	}

	ctx.SetScope(letScope)
	result, evalOk := Eval(ctx, argv[1])
	ctx.PopScope()
	return result, evalOk
}

func parseParams(paramList value.Value) []*value.Symbol {
	var params []*value.Symbol
	value.Each(paramList, func(v value.Value) {
		params = append(params, v.(*value.Symbol))
	})
	return params
}

func builtinLambda(ctx *Context, argv []value.Value) (value.Value, bool) {
	params := parseParams(argv[0])
	return NewSourceFunction("*lambda*", params, argv[1], ctx.Scope(), false), true
}

func builtinDef(direct bool) NativeFunc {
	return func(ctx *Context, argv []value.Value) (value.Value, bool) {
		name, ok := argv[0].(*value.Symbol)
		if !ok {
			return ctx.Fail("bad-self", "def requires a symbol name, got %s", value.Inspect(argv[0]))
		}
		params := parseParams(argv[1])
		fn := NewSourceFunction(name.Name(), params, argv[2], ctx.Scope(), direct)
		ctx.Scope().Add(name, fn)
		return value.Nil, true
	}
}

// builtinDefMethod implements (def-method type name (params) body): it
// registers a function in the context's method table keyed by (type of a
// value of `type`, `name`), rather than binding a scope variable.
func builtinDefMethod(ctx *Context, argv []value.Value) (value.Value, bool) {
	typeVal, ok := Eval(ctx, argv[0])
	if !ok {
		return nil, false
	}
	name, ok := argv[1].(*value.Symbol)
	if !ok {
		return ctx.Fail("bad-self", "def-method requires a symbol name, got %s", value.Inspect(argv[1]))
	}
	params := parseParams(argv[2])
	fn := NewSourceFunction(name.Name(), params, argv[3], ctx.Scope(), false)

	example, ok := exampleForType(ctx, typeVal)
	if !ok {
		return ctx.Fail("bad-self", "def-method requires a type, got %s", value.Inspect(typeVal))
	}
	ctx.RegisterMethod(example, name, fn)
	return value.Nil, true
}

// exampleForType resolves the type argument of def-method — either a
// record-type value, or a symbol naming a built-in kind such as `string` —
// into a placeholder value carrying the right type token for the method
// table. It never escapes this package.
func exampleForType(ctx *Context, typeVal value.Value) (value.Value, bool) {
	if value.IsNil(typeVal) {
		return value.Nil, true
	}
	switch t := typeVal.(type) {
	case *value.RecordType:
		return value.NewRecord(t, nil), true
	case *value.Symbol:
		switch t.Name() {
		case "int":
			return value.NewInt(0), true
		case "string":
			return value.NewString(""), true
		case "symbol":
			return t, true
		case "cell":
			return value.NewCell(value.Nil, value.Nil), true
		case "function":
			return NewNativeFunction("", 0, 0, false, nil), true
		}
	}
	return nil, false
}

// builtinDispatch implements (@ self name arg...): evaluate self, look up
// the method registered for (type(self), name), and call it with self
// pre-quoted (so apply's auto-evaluation, for a non-direct method, does not
// re-evaluate it) prepended to the remaining (still unevaluated) args.
func builtinDispatch(ctx *Context, argv []value.Value) (value.Value, bool) {
	self, ok := Eval(ctx, argv[0])
	if !ok {
		return nil, false
	}
	name, ok := argv[1].(*value.Symbol)
	if !ok {
		return ctx.Fail("bad-self", "@ requires a symbol method name, got %s", value.Inspect(argv[1]))
	}
	fn, ok := ctx.LookupMethod(self, name)
	if !ok {
		return ctx.Fail("undefined-method", "%s", name.Name())
	}

	callArgs := make([]value.Value, 0, len(argv)-1)
	callArgs = append(callArgs, value.NewQuoted(self))
	callArgs = append(callArgs, argv[2:]...)

	return Apply(ctx, fn, callArgs)
}

// builtinFirst and builtinRest resolve spec.md's open question in favor of
// the more defensive source variant: nil in, nil out, never an error.
func builtinFirst(ctx *Context, argv []value.Value) (value.Value, bool) {
	if value.IsNil(argv[0]) {
		return value.Nil, true
	}
	cell, ok := argv[0].(*value.Cell)
	if !ok {
		return ctx.Fail("bad-self", "first requires a list, got %s", value.Inspect(argv[0]))
	}
	return cell.Left, true
}

func builtinRest(ctx *Context, argv []value.Value) (value.Value, bool) {
	if value.IsNil(argv[0]) {
		return value.Nil, true
	}
	cell, ok := argv[0].(*value.Cell)
	if !ok {
		return ctx.Fail("bad-self", "rest requires a list, got %s", value.Inspect(argv[0]))
	}
	return cell.Right, true
}

func builtinAtomP(ctx *Context, argv []value.Value) (value.Value, bool) {
	if value.IsAtomic(argv[0]) {
		return value.NewInt(1), true
	}
	return value.Nil, true
}

// builtinPrint returns a NativeFunc bound to w so tests can capture output
// without touching os.Stdout, matching the teacher's habit of passing an
// io.Writer/io.StringWriter rather than hardcoding a stream
// (sqlparser.Create.Serialize(w io.StringWriter)).
func builtinPrint(w io.Writer) NativeFunc {
	return func(ctx *Context, argv []value.Value) (value.Value, bool) {
		for i, v := range argv {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, value.Inspect(v))
		}
		fmt.Fprintln(w)
		return value.Nil, true
	}
}

// builtinRecordType implements (record-type name (keys)): direct so `name`
// is bound in the current scope as a side effect rather than needing a
// separate `=`.
func builtinRecordType(ctx *Context, argv []value.Value) (value.Value, bool) {
	name, ok := argv[0].(*value.Symbol)
	if !ok {
		return ctx.Fail("bad-self", "record-type requires a symbol name, got %s", value.Inspect(argv[0]))
	}
	var keys []*value.Symbol
	for _, v := range value.ToSlice(argv[1]) {
		sym, isSym := v.(*value.Symbol)
		if !isSym {
			return ctx.Fail("bad-self", "record-type keys must be symbols, got %s", value.Inspect(v))
		}
		keys = append(keys, sym)
	}
	rt := value.NewRecordType(name.Name(), keys)
	ctx.Scope().Add(name, rt)
	return rt, true
}

func builtinMake(ctx *Context, argv []value.Value) (value.Value, bool) {
	rt, ok := argv[0].(*value.RecordType)
	if !ok {
		return ctx.Fail("bad-self", "make requires a record-type, got %s", value.Inspect(argv[0]))
	}
	vals := argv[1:]
	if len(vals) != len(rt.Keys) {
		return ctx.Fail("invalid-make", "make %s requires %d values, got %d", rt.Name, len(rt.Keys), len(vals))
	}
	return value.NewRecord(rt, vals), true
}

// builtinGetKey implements (get-key record key): direct, per spec.md's
// table (`2 (direct)`), but still evaluates the first argument explicitly
// — key is compared as a string/symbol name, matching the original's
// string-keyed record lookup.
func builtinGetKey(ctx *Context, argv []value.Value) (value.Value, bool) {
	recVal, ok := Eval(ctx, argv[0])
	if !ok {
		return nil, false
	}
	rec, ok := recVal.(*value.Record)
	if !ok {
		return ctx.Fail("bad-self", "get-key requires a record, got %s", value.Inspect(recVal))
	}

	var keyName string
	switch k := argv[1].(type) {
	case *value.Symbol:
		keyName = k.Name()
	case *value.String:
		keyName = k.Value
	default:
		return ctx.Fail("unknown-key", "get-key requires a key name, got %s", value.Inspect(argv[1]))
	}

	v, found := rec.Get(value.Intern(keyName))
	if !found {
		return ctx.Fail("unknown-key", "%s", keyName)
	}
	return v, true
}
