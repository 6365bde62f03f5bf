package eval

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/pianohacker/scarab/value"
)

var (
	builtinsOnce  sync.Once
	builtinsScope *Scope
)

// rootScope returns the process-wide, read-only builtins scope, building it
// exactly once regardless of how many contexts are created — the "one-shot
// initialization gate" spec.md §5 requires, sufficient because contexts are
// only ever created sequentially (the interpreter core has no internal
// concurrency, spec.md §1 non-goals).
func rootScope() *Scope {
	builtinsOnce.Do(func() {
		builtinsScope = NewScope(nil)
		registerBuiltins(builtinsScope)
	})
	return builtinsScope
}

// methodKey identifies a (type, method-name) pair in a context's method
// table. For records, rt pins down the specific record type (its pointer
// identity is the type token spec.md §4.5.6 and §9 call for); for every
// other kind, rt is nil and kind alone discriminates, which is how
// def-method on a built-in type like `string` is represented.
type methodKey struct {
	kind value.Kind
	rt   *value.RecordType
	name *value.Symbol
}

func typeKeyOf(v value.Value, name *value.Symbol) methodKey {
	if rec, ok := v.(*value.Record); ok {
		return methodKey{kind: value.KindRecord, rt: rec.Type, name: name}
	}
	return methodKey{kind: v.Kind(), name: name}
}

// Context is a single scarab execution environment: the active scope
// stack, the per-context global scope, the last-error slot and the
// type-keyed method table (spec.md §3 "Context").
type Context struct {
	global  *Scope
	scope   *Scope
	err     value.Value // nil means "no error"
	methods map[methodKey]*Function
	logger  logrus.FieldLogger
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithLogger attaches a structured logger in place of the default
// logrus.StandardLogger(); each evaluation error is logged to it at Debug
// level. This matches the teacher's logrus.FieldLogger
// threaded-as-a-parameter style rather than a global logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Context) { c.logger = logger }
}

// NewContext creates a fresh execution environment whose global scope is a
// child of the shared builtins scope.
func NewContext(opts ...Option) *Context {
	global := NewScope(rootScope())
	ctx := &Context{
		global:  global,
		scope:   global,
		methods: make(map[methodKey]*Function),
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Scope returns the currently active scope.
func (ctx *Context) Scope() *Scope { return ctx.scope }

// SetScope replaces the currently active scope.
func (ctx *Context) SetScope(s *Scope) { ctx.scope = s }

// PushScope creates a new child of the current scope and makes it current.
func (ctx *Context) PushScope() *Scope {
	s := NewScope(ctx.scope)
	ctx.scope = s
	return s
}

// PopScope restores the current scope's parent, asserting one exists — an
// unbalanced pop is an interpreter bug, not a recoverable scarab error.
func (ctx *Context) PopScope() {
	if ctx.scope.parent == nil {
		panic("eval: PopScope called with no parent scope")
	}
	ctx.scope = ctx.scope.parent
}

// GlobalScope returns this context's root (non-builtins) scope.
func (ctx *Context) GlobalScope() *Scope { return ctx.global }

// SetError fills the error slot with a (kind, message) cell and returns
// (nil, false), the universal failure protocol for evaluation primitives
// (spec.md §4.5.2, §7).
func (ctx *Context) SetError(kind string, v value.Value) (value.Value, bool) {
	ctx.err = value.NewCell(
		value.Intern(kind),
		value.NewCell(v, value.Nil),
	)
	if ctx.logger != nil {
		ctx.logger.WithField("kind", kind).Debug("scarab: evaluation error")
	}
	return nil, false
}

// Fail is a convenience wrapper for the common case of a formatted string
// message.
func (ctx *Context) Fail(kind, format string, args ...interface{}) (value.Value, bool) {
	return ctx.SetError(kind, value.NewString(fmt.Sprintf(format, args...)))
}

// Error returns the last error set on this context, or nil if none (or it
// has been cleared).
func (ctx *Context) Error() value.Value { return ctx.err }

// ClearError resets the error slot, used by Interpreter.RunString before each
// run (one per REPL line) so a prior failure does not leak into the next one.
func (ctx *Context) ClearError() { ctx.err = nil }

// RegisterMethod adds fn to the method table under (type-of example, name).
// example only supplies the type token; it is never otherwise consulted.
func (ctx *Context) RegisterMethod(example value.Value, name *value.Symbol, fn *Function) {
	ctx.methods[typeKeyOf(example, name)] = fn
}

// LookupMethod finds the method registered for self's type and name.
func (ctx *Context) LookupMethod(self value.Value, name *value.Symbol) (*Function, bool) {
	fn, ok := ctx.methods[typeKeyOf(self, name)]
	return fn, ok
}

// Logger exposes the context's diagnostic sink, or nil.
func (ctx *Context) Logger() logrus.FieldLogger { return ctx.logger }
