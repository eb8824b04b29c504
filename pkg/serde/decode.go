package serde

import (
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/lattice-store/lattice-go/pkg/wire"
)

// Unmarshal reconstructs a value from a wire value by driving the
// target's UnmarshalWire. The wire value is never mutated.
func Unmarshal(val wire.Value, v Unmarshaler) error {
	return v.UnmarshalWire(&valueDecoder{val: val})
}

// valueDecoder reads one wire value.
type valueDecoder struct {
	val wire.Value
}

var _ Decoder = (*valueDecoder)(nil)

// DecodeAny dispatches on whichever wire field is populated. The
// precedence is fixed: boolean, list, map, number, null, string.
// Number text is tried as a signed 64-bit integer first, then as a
// 64-bit float.
func (d *valueDecoder) DecodeAny(v Visitor) error {
	switch {
	case d.val.BOOL != nil:
		return v.VisitBool(*d.val.BOOL)
	case d.val.L != nil:
		return v.VisitSeq(&seqReader{values: d.val.L})
	case d.val.M != nil:
		return v.VisitMap(newMapReader(d.val.M))
	case d.val.N != nil:
		if i, err := strconv.ParseInt(*d.val.N, 10, 64); err == nil {
			return v.VisitInt(i)
		}
		if f, err := strconv.ParseFloat(*d.val.N, 64); err == nil {
			return v.VisitFloat(f)
		}
		return NewError("Numeric Value Expected")
	case d.val.NULL != nil:
		return v.VisitNil()
	case d.val.S != nil:
		return v.VisitString(*d.val.S)
	default:
		return NewError("Supported Value Expected")
	}
}

// Width and container requests carry no information the wire data does
// not already have, so they all use the self-describing dispatch.

func (d *valueDecoder) DecodeBool(v Visitor) error { return d.DecodeAny(v) }

func (d *valueDecoder) DecodeInt(v Visitor) error { return d.DecodeAny(v) }

func (d *valueDecoder) DecodeUint(v Visitor) error { return d.DecodeAny(v) }

func (d *valueDecoder) DecodeFloat(v Visitor) error { return d.DecodeAny(v) }

func (d *valueDecoder) DecodeString(v Visitor) error { return d.DecodeAny(v) }

func (d *valueDecoder) DecodeSeq(v Visitor) error { return d.DecodeAny(v) }

func (d *valueDecoder) DecodeMap(v Visitor) error { return d.DecodeAny(v) }

func (d *valueDecoder) DecodeStruct(name string, fields []string, v Visitor) error {
	return d.DecodeAny(v)
}

func (d *valueDecoder) DecodeUnit(v Visitor) error { return d.DecodeAny(v) }

// DecodeChar requires a wire string and yields its first character.
func (d *valueDecoder) DecodeChar(v Visitor) error {
	if d.val.S == nil {
		return NewError("String Value Expected (Char)")
	}
	if *d.val.S == "" {
		return NewError("Non-Zero Length String Expected")
	}
	r, _ := utf8.DecodeRuneInString(*d.val.S)
	return v.VisitChar(r)
}

func (d *valueDecoder) DecodeBytes(v Visitor) error {
	if d.val.B == nil {
		return NewError("Byte Vector Value Expected")
	}
	return v.VisitBytes(d.val.B)
}

// DecodeOption treats only an explicit NULL=true as absent. Every
// other value is treated as present, including a value with no
// populated field at all; the recursion then fails on it.
func (d *valueDecoder) DecodeOption(v Visitor) error {
	if d.val.NULL != nil && *d.val.NULL {
		return v.VisitNil()
	}
	return v.VisitSome(d)
}

func (d *valueDecoder) DecodeNewtype(name string, v Visitor) error {
	return v.VisitNewtype(d)
}

// DecodeEnum requires a wire map and reads one tag/payload pair. With
// more than one entry, which pair is read follows Go map iteration
// order and is unspecified; a conforming producer writes exactly one.
func (d *valueDecoder) DecodeEnum(name string, variants []string, v Visitor) error {
	if d.val.M == nil {
		return NewError("Map Value Expected")
	}
	for tag, payload := range d.val.M {
		return v.VisitEnum(&enumReader{tag: tag, payload: payload})
	}
	return NewError("Key/Value Expected")
}

// keyDecoder delivers a map key or variant tag. Keys are strings on
// the wire, so every request yields the string, whatever the target
// shape asked for.
type keyDecoder struct {
	key string
}

var _ Decoder = keyDecoder{}

func (d keyDecoder) deliver(v Visitor) error { return v.VisitString(d.key) }

func (d keyDecoder) DecodeAny(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeBool(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeInt(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeUint(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeFloat(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeString(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeSeq(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeMap(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeStruct(name string, fields []string, v Visitor) error {
	return d.deliver(v)
}

func (d keyDecoder) DecodeUnit(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeChar(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeBytes(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeOption(v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeNewtype(name string, v Visitor) error { return d.deliver(v) }

func (d keyDecoder) DecodeEnum(name string, variants []string, v Visitor) error {
	return d.deliver(v)
}

// seqReader yields list elements in stored order.
type seqReader struct {
	values []wire.Value
	next   int
}

func (s *seqReader) NextElement(v Unmarshaler) (bool, error) {
	if s.next >= len(s.values) {
		return false, nil
	}
	val := s.values[s.next]
	s.next++
	if err := Unmarshal(val, v); err != nil {
		return false, err
	}
	return true, nil
}

// mapReader walks a wire map with a key cursor and a value cursor over
// one fixed key order, keeping the two aligned. The order is sorted so
// decoding is deterministic; wire map insertion order carries no
// meaning.
type mapReader struct {
	entries map[string]wire.Value
	keys    []string
	keyNext int
	valNext int
}

func newMapReader(entries map[string]wire.Value) *mapReader {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &mapReader{entries: entries, keys: keys}
}

func (m *mapReader) NextKey(k Unmarshaler) (bool, error) {
	if m.keyNext >= len(m.keys) {
		return false, nil
	}
	key := m.keys[m.keyNext]
	m.keyNext++
	if err := k.UnmarshalWire(keyDecoder{key: key}); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mapReader) NextValue(v Unmarshaler) error {
	if m.valNext >= m.keyNext || m.valNext >= len(m.keys) {
		return NewError("Value Expected")
	}
	val := m.entries[m.keys[m.valNext]]
	m.valNext++
	return Unmarshal(val, v)
}

// enumReader holds the first tag/payload pair of a variant map.
type enumReader struct {
	tag     string
	payload wire.Value
}

func (e *enumReader) Tag(t Unmarshaler) (VariantReader, error) {
	if err := t.UnmarshalWire(keyDecoder{key: e.tag}); err != nil {
		return nil, err
	}
	return &variantReader{payload: e.payload}, nil
}

// variantReader reads a variant payload according to the kind the
// target shape expects.
type variantReader struct {
	payload wire.Value
}

func (r *variantReader) Unit() error {
	if r.payload.NULL != nil && *r.payload.NULL {
		return nil
	}
	return NewError("Null Value Expected")
}

func (r *variantReader) Newtype(v Unmarshaler) error {
	return Unmarshal(r.payload, v)
}

func (r *variantReader) Tuple(v Visitor) error {
	if r.payload.L == nil {
		return NewError("List Value Expected")
	}
	return v.VisitSeq(&seqReader{values: r.payload.L})
}

func (r *variantReader) Struct(fields []string, v Visitor) error {
	if r.payload.M == nil {
		return NewError("Map Value Expected")
	}
	return v.VisitMap(newMapReader(r.payload.M))
}
