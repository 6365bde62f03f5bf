// Package value implements scarab's tagged value graph: the handful of
// heap-allocated variants (nil, int, string, symbol, cell, quoted, function,
// record-type, record) that every other package in this module evaluates,
// prints or walks. It also carries the list utilities (length/append/prepend)
// that operate directly on the cell chains defined here, mirroring how the
// teacher keeps its scanner and its document-object-model types in a single
// package rather than splitting them across import boundaries.
package value

// Kind tags a Value with its variant. It is never exposed to scarab source
// code directly; builtins and the evaluator switch on it internally.
type Kind int

const (
	KindNil Kind = iota
	KindInt
	KindString
	KindSymbol
	KindCell
	KindQuoted
	KindFunction
	KindRecordType
	KindRecord
)

func (k Kind) String() string {
	return kindNames[k]
}

var kindNames = map[Kind]string{
	KindNil:        "nil",
	KindInt:        "int",
	KindString:     "string",
	KindSymbol:     "symbol",
	KindCell:       "cell",
	KindQuoted:     "quoted",
	KindFunction:   "function",
	KindRecordType: "record-type",
	KindRecord:     "record",
}

func init() {
	for k := KindNil; k <= KindRecord; k++ {
		if kindNames[k] == "" {
			panic("value: kind missing a name")
		}
	}
}

// Value is the sum type every scarab datum implements. Identity (address)
// is what nil and interned symbols compare by; everything else is compared
// by whatever the language exposes through builtins, not through Go's ==.
type Value interface {
	Kind() Kind
}

// nilValue is the single nil instance for a process. Two nils are always
// the same Go pointer, so identity comparison is just ==.
type nilValue struct{}

func (*nilValue) Kind() Kind { return KindNil }

// Nil is the one and only nil value.
var Nil Value = &nilValue{}

// IsNil reports whether v is the nil singleton.
func IsNil(v Value) bool {
	return v == Nil
}

// Int is a signed 64-bit integer value.
type Int struct {
	Value int64
}

func (*Int) Kind() Kind { return KindInt }

func NewInt(n int64) *Int {
	return &Int{Value: n}
}

// String is an owned byte sequence, presumed but not required to be UTF-8.
type String struct {
	Value string
}

func (*String) Kind() Kind { return KindString }

func NewString(s string) *String {
	return &String{Value: s}
}

// Quoted marks a value to be returned as-is by the evaluator, equivalent to
// a fexpr's suppressed evaluation applied to a single datum rather than a
// whole call.
type Quoted struct {
	Inner Value
}

func (*Quoted) Kind() Kind { return KindQuoted }

func NewQuoted(v Value) *Quoted {
	return &Quoted{Inner: v}
}

// IsAtomic reports whether a value evaluates to itself (spec.md §4.1). Cell
// and symbol are the only non-atomic variants.
func IsAtomic(v Value) bool {
	switch v.Kind() {
	case KindNil, KindInt, KindString, KindFunction, KindRecordType, KindRecord, KindQuoted:
		return true
	default:
		return false
	}
}

// The checked-cast accessors below are internal invariants, never
// user-facing errors: a mismatch means a bug in this interpreter, not bad
// scarab source, so they panic rather than returning an error value.

func AsInt(v Value) int64 {
	i, ok := v.(*Int)
	if !ok {
		panic("value: expected int, got " + v.Kind().String())
	}
	return i.Value
}

func AsString(v Value) string {
	s, ok := v.(*String)
	if !ok {
		panic("value: expected string, got " + v.Kind().String())
	}
	return s.Value
}

func AsQuoted(v Value) Value {
	q, ok := v.(*Quoted)
	if !ok {
		panic("value: expected quoted, got " + v.Kind().String())
	}
	return q.Inner
}
