package eval

import "github.com/pianohacker/scarab/value"

// Scope is a mapping from interned symbol to value, plus an optional parent
// forming a chain from innermost outward (spec.md §3). Lookups walk
// parents; insertions only ever touch the innermost scope.
type Scope struct {
	parent *Scope
	vars   map[*value.Symbol]value.Value
}

// NewScope creates an empty scope chained to parent (nil for a root scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, vars: make(map[*value.Symbol]value.Value)}
}

// Add inserts or overwrites name in this scope only, never a parent.
func (s *Scope) Add(name *value.Symbol, v value.Value) {
	s.vars[name] = v
}

// Lookup walks this scope and its parents, returning (nil, false) if name is
// bound nowhere in the chain.
func (s *Scope) Lookup(name *value.Symbol) (value.Value, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Parent exposes the enclosing scope, or nil at the chain's root.
func (s *Scope) Parent() *Scope {
	return s.parent
}
