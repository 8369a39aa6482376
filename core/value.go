package core

import "math"

// Kind represents the kind of a Value. The set of kinds is closed.
type Kind uint8

const (
	NullKind Kind = iota
	Int64Kind
	Uint64Kind
	Float64Kind
	BoolKind
	StringKind
	WideStringKind
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "Null"
	case Int64Kind:
		return "Int64"
	case Uint64Kind:
		return "Uint64"
	case Float64Kind:
		return "Float64"
	case BoolKind:
		return "Bool"
	case StringKind:
		return "String"
	case WideStringKind:
		return "WideString"
	default:
		return "Unknown"
	}
}

// Value is a value that can be logged as part of a log record.
// Scalars are packed into the num field; strings ride in their own
// fields so no allocation happens when building a record.
//
// A WideString value is a view over the caller's []uint16 slice: the
// slice must outlive the log call that the value is part of and must
// not be mutated while the record is being rendered. (Go strings are
// immutable, so String values carry no such caveat.)
type Value struct {
	kind Kind
	num  uint64
	str  string
	wide []uint16
}

// Null returns the null value.
func Null() Value {
	return Value{kind: NullKind}
}

// Int64Value returns a Value for a signed integer.
func Int64Value(v int64) Value {
	return Value{kind: Int64Kind, num: uint64(v)}
}

// Uint64Value returns a Value for an unsigned integer.
func Uint64Value(v uint64) Value {
	return Value{kind: Uint64Kind, num: v}
}

// Float64Value returns a Value for a float.
func Float64Value(v float64) Value {
	return Value{kind: Float64Kind, num: math.Float64bits(v)}
}

// BoolValue returns a Value for a bool.
func BoolValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: BoolKind, num: n}
}

// StringValue returns a Value for a string.
func StringValue(v string) Value {
	return Value{kind: StringKind, str: v}
}

// WideValue returns a Value viewing a UTF-16 string. See the lifetime
// caveat on Value.
func WideValue(v []uint16) Value {
	return Value{kind: WideStringKind, wide: v}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Int64 returns the signed integer value, or 0 for other kinds.
func (v Value) Int64() int64 {
	if v.kind != Int64Kind {
		return 0
	}
	return int64(v.num)
}

// Uint64 returns the unsigned integer value, or 0 for other kinds.
func (v Value) Uint64() uint64 {
	if v.kind != Uint64Kind {
		return 0
	}
	return v.num
}

// Float64 returns the float value, or 0 for other kinds.
func (v Value) Float64() float64 {
	if v.kind != Float64Kind {
		return 0
	}
	return math.Float64frombits(v.num)
}

// Bool returns the bool value, or false for other kinds.
func (v Value) Bool() bool {
	return v.kind == BoolKind && v.num == 1
}

// String returns the string value, or "" for other kinds.
func (v Value) String() string {
	if v.kind != StringKind {
		return ""
	}
	return v.str
}

// Wide returns the UTF-16 string value, or nil for other kinds.
func (v Value) Wide() []uint16 {
	if v.kind != WideStringKind {
		return nil
	}
	return v.wide
}
