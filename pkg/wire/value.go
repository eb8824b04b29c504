package wire

import (
	"bytes"
	"sort"
)

// Value is the tagged-union wire representation of a single attribute
// value. At most one field is populated. Once built a Value is treated
// as an immutable tree: children are never shared between Values and
// decoding never mutates them.
type Value struct {
	// BOOL is a boolean value.
	BOOL *bool `cbor:"1,keyasint"`

	// N is a number, carried as decimal text.
	N *string `cbor:"2,keyasint"`

	// S is a string value.
	S *string `cbor:"3,keyasint"`

	// B is a raw byte string.
	B []byte `cbor:"4,keyasint"`

	// NULL is true when the value is explicitly null.
	NULL *bool `cbor:"5,keyasint"`

	// L is an ordered list of values.
	L []Value `cbor:"6,keyasint"`

	// M is a string-keyed map of values. Insertion order is not
	// significant.
	M map[string]Value `cbor:"7,keyasint"`
}

// Kind identifies which field of a Value is populated.
type Kind int

const (
	// KindNone means no field is populated.
	KindNone Kind = iota

	// KindBool is a BOOL value.
	KindBool

	// KindNumber is an N value.
	KindNumber

	// KindString is an S value.
	KindString

	// KindBytes is a B value.
	KindBytes

	// KindNull is a NULL value.
	KindNull

	// KindList is an L value.
	KindList

	// KindMap is an M value.
	KindMap
)

// String returns the store field name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "BOOL"
	case KindNumber:
		return "N"
	case KindString:
		return "S"
	case KindBytes:
		return "B"
	case KindNull:
		return "NULL"
	case KindList:
		return "L"
	case KindMap:
		return "M"
	default:
		return "NONE"
	}
}

// Kind reports which field of v is populated. When more than one field
// is populated (a malformed value), the first in store field order
// (BOOL, N, S, B, NULL, L, M) wins.
func (v Value) Kind() Kind {
	switch {
	case v.BOOL != nil:
		return KindBool
	case v.N != nil:
		return KindNumber
	case v.S != nil:
		return KindString
	case v.B != nil:
		return KindBytes
	case v.NULL != nil:
		return KindNull
	case v.L != nil:
		return KindList
	case v.M != nil:
		return KindMap
	default:
		return KindNone
	}
}

// Constructors. Each returns a Value with exactly one field populated.

// Bool returns a BOOL value.
func Bool(v bool) Value {
	return Value{BOOL: &v}
}

// Number returns an N value holding the given decimal text.
func Number(n string) Value {
	return Value{N: &n}
}

// String returns an S value.
func String(s string) Value {
	return Value{S: &s}
}

// Bytes returns a B value holding a copy of b. An empty or nil b still
// populates B, so an empty byte string stays a byte string on the wire.
func Bytes(b []byte) Value {
	out := make([]byte, len(b))
	copy(out, b)
	return Value{B: out}
}

// Null returns a NULL=true value.
func Null() Value {
	t := true
	return Value{NULL: &t}
}

// List returns an L value holding the given elements.
func List(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{L: elems}
}

// Map returns an M value holding the given entries.
func Map(entries map[string]Value) Value {
	if entries == nil {
		entries = map[string]Value{}
	}
	return Value{M: entries}
}

// Equal reports whether two Values are structurally equal: the same
// field populated on both sides with equal contents. Map entries are
// compared without regard to order.
func (v Value) Equal(o Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case KindBool:
		return *v.BOOL == *o.BOOL
	case KindNumber:
		return *v.N == *o.N
	case KindString:
		return *v.S == *o.S
	case KindBytes:
		return bytes.Equal(v.B, o.B)
	case KindNull:
		return *v.NULL == *o.NULL
	case KindList:
		if len(v.L) != len(o.L) {
			return false
		}
		for i := range v.L {
			if !v.L[i].Equal(o.L[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.M) != len(o.M) {
			return false
		}
		for k, ve := range v.M {
			oe, ok := o.M[k]
			if !ok || !ve.Equal(oe) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Keys returns the sorted keys of an M value, or nil for any other kind.
func (v Value) Keys() []string {
	if v.M == nil {
		return nil
	}
	keys := make([]string, 0, len(v.M))
	for k := range v.M {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
