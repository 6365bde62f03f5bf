package value

import "sync"

// Symbol is an interned name. Two symbols with the same text are always the
// same Go pointer, so scope lookups and method-table keys can compare
// symbols with ==, matching spec.md's "two symbols with the same name share
// identity" invariant.
type Symbol struct {
	name string
}

func (*Symbol) Kind() Kind { return KindSymbol }

func (s *Symbol) Name() string { return s.name }

var (
	internMu    sync.Mutex
	internTable = map[string]*Symbol{}
)

// Intern returns the canonical Symbol for name, creating it on first use.
// The table only grows; symbols live for the process lifetime.
func Intern(name string) *Symbol {
	internMu.Lock()
	defer internMu.Unlock()

	if s, ok := internTable[name]; ok {
		return s
	}
	s := &Symbol{name: name}
	internTable[name] = s
	return s
}
