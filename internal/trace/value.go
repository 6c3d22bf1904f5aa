package trace

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindAbsent Kind = iota // declared but not yet assigned
	KindInt
	KindText
	KindBool
	KindList
)

// String returns the kind name used in exports.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindInt:
		return "int"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a tagged variant holding one traced variable's value.
// The zero Value is Absent. Values are immutable: List copies its input and
// AsList returns a copy.
type Value struct {
	kind Kind
	i    int64
	s    string
	b    bool
	list []int64
}

// Int returns an integer Value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Text returns a string Value.
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// List returns a Value holding a copy of vs.
func List(vs []int64) Value {
	return Value{kind: KindList, list: slices.Clone(vs)}
}

// Absent returns the Value of a variable that has no value yet.
func Absent() Value { return Value{} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v holds no value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsList returns a copy of the list held by v.
func (v Value) AsList() ([]int64, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return slices.Clone(v.list), true
}

// String formats v for display next to its variable name.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindText:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		parts := make([]string, len(v.list))
		for i, n := range v.list {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "null"
	}
}

// Equal reports whether v and o hold the same variant and value.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindText:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	case KindList:
		return slices.Equal(v.list, o.list)
	default:
		return true
	}
}

// Interface returns v as a plain Go value: int64, string, bool, []int64 or nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindText:
		return v.s
	case KindBool:
		return v.b
	case KindList:
		return slices.Clone(v.list)
	default:
		return nil
	}
}

// MarshalJSON encodes v as the matching JSON scalar, array, or null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindList && v.list == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.Interface())
}
