package trace

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
)

// Var is one named entry of a Vars snapshot.
type Var struct {
	Name  string
	Value Value
}

// Vars is an ordered snapshot of named values. Every method that adds an
// entry returns a new Vars and never writes into the receiver's backing
// array, so snapshots built from a shared prefix stay independent.
//
//	vars := trace.NewVars().Int("sum", 0).Int("i", 0).Absent("card")
type Vars struct {
	entries []Var
}

// NewVars returns an empty snapshot.
func NewVars() Vars { return Vars{} }

// Set returns a copy of vs with name bound to value. An existing entry keeps
// its position; a new one is appended.
func (vs Vars) Set(name string, value Value) Vars {
	out := make([]Var, len(vs.entries), len(vs.entries)+1)
	for i, e := range vs.entries {
		out[i] = Var{Name: e.Name, Value: e.Value.clone()}
	}
	for i := range out {
		if out[i].Name == name {
			out[i].Value = value.clone()
			return Vars{entries: out}
		}
	}
	return Vars{entries: append(out, Var{Name: name, Value: value.clone()})}
}

// Int binds name to an integer.
func (vs Vars) Int(name string, v int64) Vars { return vs.Set(name, Int(v)) }

// Text binds name to a string.
func (vs Vars) Text(name, v string) Vars { return vs.Set(name, Text(v)) }

// Bool binds name to a boolean.
func (vs Vars) Bool(name string, v bool) Vars { return vs.Set(name, Bool(v)) }

// List binds name to a copy of the integer list.
func (vs Vars) List(name string, v []int64) Vars { return vs.Set(name, List(v)) }

// Absent binds name to the absent value.
func (vs Vars) Absent(name string) Vars { return vs.Set(name, Absent()) }

// Get returns the value bound to name.
func (vs Vars) Get(name string) (Value, bool) {
	for _, e := range vs.entries {
		if e.Name == name {
			return e.Value.clone(), true
		}
	}
	return Value{}, false
}

// Len returns the number of entries.
func (vs Vars) Len() int { return len(vs.entries) }

// Names returns the variable names in declaration order.
func (vs Vars) Names() []string {
	names := make([]string, len(vs.entries))
	for i, e := range vs.entries {
		names[i] = e.Name
	}
	return names
}

// All iterates over the entries in declaration order.
func (vs Vars) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, e := range vs.entries {
			if !yield(e.Name, e.Value.clone()) {
				return
			}
		}
	}
}

// Clone returns a deep copy of vs.
func (vs Vars) Clone() Vars {
	if vs.entries == nil {
		return Vars{}
	}
	out := make([]Var, len(vs.entries))
	for i, e := range vs.entries {
		out[i] = Var{Name: e.Name, Value: e.Value.clone()}
	}
	return Vars{entries: out}
}

// Equal reports whether both snapshots hold the same entries in the same order.
func (vs Vars) Equal(o Vars) bool {
	return slices.EqualFunc(vs.entries, o.entries, func(a, b Var) bool {
		return a.Name == b.Name && a.Value.Equal(b.Value)
	})
}

// MarshalJSON encodes vs as a JSON object whose keys keep declaration order.
func (vs Vars) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range vs.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := e.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (v Value) clone() Value {
	if v.kind == KindList {
		v.list = slices.Clone(v.list)
	}
	return v
}
