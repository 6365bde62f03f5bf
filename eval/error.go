package eval

import "github.com/pianohacker/scarab/value"

// Error mirrors a language-level error value (spec.md §4.5.2's
// `(symbol kind, string message)` cell) as a Go error, used only at the
// Go/CLI boundary to turn ctx.Error() into something `cmd/scarab` can
// return and os.Exit(1) on — mirroring the teacher's SQLUserError, which
// wraps a driver-level value and renders it lazily in Error().
type Error struct {
	Kind    *value.Symbol
	Message string
}

func (e *Error) Error() string {
	return value.Inspect(e.Value())
}

// Value reconstructs the underlying `(kind message)` cell.
func (e *Error) Value() value.Value {
	return value.NewCell(e.Kind, value.NewCell(value.NewString(e.Message), value.Nil))
}

// ErrorFromValue converts a context's error slot into an *Error, or nil if
// v is not a well-formed (kind message) cell (which never happens for
// errors produced by SetError/Fail, but guards against hand-built values).
func ErrorFromValue(v value.Value) *Error {
	cell, ok := v.(*value.Cell)
	if !ok {
		return nil
	}
	kind, ok := cell.Left.(*value.Symbol)
	if !ok {
		return nil
	}
	rest, ok := cell.Right.(*value.Cell)
	if !ok {
		return nil
	}
	msg, ok := rest.Left.(*value.String)
	if !ok {
		return nil
	}
	return &Error{Kind: kind, Message: msg.Value}
}
