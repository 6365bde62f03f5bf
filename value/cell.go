package value

// Cell is an ordered pair, the building block of lists and dotted pairs. A
// "list" is nil or a Cell whose Right is itself a list; a "dotted list" is a
// Cell whose Right is neither nil nor a Cell (legal, but neither the parser
// nor any builtin produces one; only a direct NewCell call can).
type Cell struct {
	Left  Value
	Right Value
}

func (*Cell) Kind() Kind { return KindCell }

func NewCell(left, right Value) *Cell {
	return &Cell{Left: left, Right: right}
}

// Each walks a proper list, calling fn with every element in order. It stops
// (without error) at the first non-Cell Right, matching Length's "stops at
// the first non-cell tail" behavior on a dotted list.
func Each(list Value, fn func(elem Value)) {
	for {
		cell, ok := list.(*Cell)
		if !ok {
			return
		}
		fn(cell.Left)
		list = cell.Right
	}
}

// Length counts cells until nil; on a dotted list it stops at the first
// non-cell Right rather than being an error, per spec.md §4.2.
func Length(list Value) int {
	n := 0
	Each(list, func(Value) { n++ })
	return n
}

// ToSlice collects a proper (or dotted-at-the-tail) list's elements.
func ToSlice(list Value) []Value {
	var out []Value
	Each(list, func(v Value) { out = append(out, v) })
	return out
}

// FromSlice builds a proper list cell chain from vs, in order.
func FromSlice(vs []Value) Value {
	result := Nil
	for i := len(vs) - 1; i >= 0; i-- {
		result = NewCell(vs[i], result)
	}
	return result
}

// Append returns a list with v at the end. If list is a Cell, its tail
// cell's Right is mutated in place to point at a new (v, nil) cell, and the
// original head is returned; if list is nil, a fresh (v, nil) cell is
// returned. Matches kh_list_append's in-place splice.
func Append(list Value, v Value) Value {
	newTail := NewCell(v, Nil)

	if cell, ok := list.(*Cell); ok {
		tail := cell
		for {
			next, ok := tail.Right.(*Cell)
			if !ok {
				break
			}
			tail = next
		}
		tail.Right = newTail
		return list
	}

	if IsNil(list) {
		return newTail
	}

	panic("value: Append called on a non-list value")
}

// Prepend always returns a fresh (v, list) cell.
func Prepend(list Value, v Value) Value {
	return NewCell(v, list)
}
