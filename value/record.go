package value

// RecordType is an ordered set of unique, interned key names defining a
// record's shape. Its identity (the pointer itself) is the type token used
// by method dispatch for record values.
type RecordType struct {
	Name string
	Keys []*Symbol
}

func (*RecordType) Kind() Kind { return KindRecordType }

func NewRecordType(name string, keys []*Symbol) *RecordType {
	return &RecordType{Name: name, Keys: keys}
}

// KeyIndex returns the position of key in the type's key list, or -1.
func (rt *RecordType) KeyIndex(key *Symbol) int {
	for i, k := range rt.Keys {
		if k == key {
			return i
		}
	}
	return -1
}

// Record is an instance of a RecordType, carrying one value per key in the
// type's declared order. len(Values) == len(Type.Keys) always.
type Record struct {
	Type   *RecordType
	Values []Value
}

func (*Record) Kind() Kind { return KindRecord }

// NewRecord builds a record from positional values; missing trailing values
// default to Nil.
func NewRecord(rt *RecordType, values []Value) *Record {
	vs := make([]Value, len(rt.Keys))
	for i := range vs {
		if i < len(values) {
			vs[i] = values[i]
		} else {
			vs[i] = Nil
		}
	}
	return &Record{Type: rt, Values: vs}
}

// Get returns the value stored at key, and whether key is declared on the
// record's type at all.
func (r *Record) Get(key *Symbol) (Value, bool) {
	i := r.Type.KeyIndex(key)
	if i < 0 {
		return nil, false
	}
	return r.Values[i], true
}

// Set overwrites the value stored at key; reports whether key is declared.
func (r *Record) Set(key *Symbol, v Value) bool {
	i := r.Type.KeyIndex(key)
	if i < 0 {
		return false
	}
	r.Values[i] = v
	return true
}
