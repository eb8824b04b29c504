package serde

import (
	"strconv"

	"github.com/lattice-store/lattice-go/pkg/wire"
)

// Marshal serializes a self-describing value into a wire value. It
// never fails for a value that follows the Encoder contract; every
// error it returns originates from the value's own MarshalWire.
func Marshal(v Marshaler) (wire.Value, error) {
	var enc valueEncoder
	if err := v.MarshalWire(&enc); err != nil {
		return wire.Value{}, err
	}
	return enc.out, nil
}

// valueEncoder accumulates exactly one wire value. Compound shapes
// hand out builders that write their finalized result back into out.
type valueEncoder struct {
	out wire.Value
}

var _ Encoder = (*valueEncoder)(nil)

func (e *valueEncoder) EncodeBool(v bool) error {
	e.out = wire.Bool(v)
	return nil
}

// Numbers are carried as decimal text. Integer and float formatting
// use strconv's shortest round-trippable forms.

func (e *valueEncoder) EncodeInt(v int64) error {
	e.out = wire.Number(strconv.FormatInt(v, 10))
	return nil
}

func (e *valueEncoder) EncodeUint(v uint64) error {
	e.out = wire.Number(strconv.FormatUint(v, 10))
	return nil
}

func (e *valueEncoder) EncodeFloat32(v float32) error {
	e.out = wire.Number(strconv.FormatFloat(float64(v), 'g', -1, 32))
	return nil
}

func (e *valueEncoder) EncodeFloat64(v float64) error {
	e.out = wire.Number(strconv.FormatFloat(v, 'g', -1, 64))
	return nil
}

// A character encodes as a string of length one.
func (e *valueEncoder) EncodeChar(v rune) error {
	e.out = wire.String(string(v))
	return nil
}

func (e *valueEncoder) EncodeString(v string) error {
	e.out = wire.String(v)
	return nil
}

func (e *valueEncoder) EncodeBytes(v []byte) error {
	e.out = wire.Bytes(v)
	return nil
}

// An absent optional encodes as the explicit null; a present optional
// encodes as its inner value with no wrapping.

func (e *valueEncoder) EncodeNone() error {
	return e.EncodeUnit()
}

func (e *valueEncoder) EncodeSome(v Marshaler) error {
	inner, err := Marshal(v)
	if err != nil {
		return err
	}
	e.out = inner
	return nil
}

func (e *valueEncoder) EncodeUnit() error {
	e.out = wire.Null()
	return nil
}

func (e *valueEncoder) EncodeUnitStruct(name string) error {
	return e.EncodeUnit()
}

// A newtype wrapper is transparent: only the inner value reaches the
// wire.
func (e *valueEncoder) EncodeNewtype(name string, v Marshaler) error {
	inner, err := Marshal(v)
	if err != nil {
		return err
	}
	e.out = inner
	return nil
}

func (e *valueEncoder) EncodeSeq(n int) (SeqEncoder, error) {
	return &seqEncoder{enc: e, values: sizedValues(n)}, nil
}

func (e *valueEncoder) EncodeMap(n int) (MapEncoder, error) {
	return &mapEncoder{enc: e, values: make(map[string]wire.Value, max(n, 0))}, nil
}

func (e *valueEncoder) EncodeStruct(name string, n int) (StructEncoder, error) {
	return &structEncoder{enc: e, values: make(map[string]wire.Value, max(n, 0))}, nil
}

// Every variant kind encodes as a single-entry map keyed by the
// variant tag. Nesting the payload one level keeps unit variants
// distinguishable from plain records and keeps the payload shapes
// identical to plain lists and maps.

func (e *valueEncoder) EncodeUnitVariant(name, tag string) error {
	e.out = wire.Map(map[string]wire.Value{tag: wire.Null()})
	return nil
}

func (e *valueEncoder) EncodeNewtypeVariant(name, tag string, v Marshaler) error {
	payload, err := Marshal(v)
	if err != nil {
		return err
	}
	e.out = wire.Map(map[string]wire.Value{tag: payload})
	return nil
}

func (e *valueEncoder) EncodeTupleVariant(name, tag string, n int) (SeqEncoder, error) {
	return &tupleVariantEncoder{enc: e, tag: tag, values: sizedValues(n)}, nil
}

func (e *valueEncoder) EncodeStructVariant(name, tag string, n int) (StructEncoder, error) {
	return &structVariantEncoder{enc: e, tag: tag, values: make(map[string]wire.Value, max(n, 0))}, nil
}

func sizedValues(n int) []wire.Value {
	return make([]wire.Value, 0, max(n, 0))
}

// seqEncoder accumulates an ordered list for sequences, tuples, and
// tuple-structs.
type seqEncoder struct {
	enc    *valueEncoder
	values []wire.Value
}

func (s *seqEncoder) Element(v Marshaler) error {
	elem, err := Marshal(v)
	if err != nil {
		return err
	}
	s.values = append(s.values, elem)
	return nil
}

func (s *seqEncoder) End() error {
	s.enc.out = wire.List(s.values...)
	return nil
}

// mapEncoder accumulates a string-keyed map. Wire map keys must be
// strings, so each key is itself serialized and rejected unless the
// result is a wire string.
type mapEncoder struct {
	enc    *valueEncoder
	key    *string
	values map[string]wire.Value
}

func (m *mapEncoder) Key(k Marshaler) error {
	keyVal, err := Marshal(k)
	if err != nil || keyVal.S == nil {
		return NewError("Key Must Be String")
	}
	m.key = keyVal.S
	return nil
}

func (m *mapEncoder) Value(v Marshaler) error {
	val, err := Marshal(v)
	if m.key == nil || err != nil {
		return NewError("Key Must Be Set and Value Must Be Serializable")
	}
	m.values[*m.key] = val
	return nil
}

func (m *mapEncoder) End() error {
	m.enc.out = wire.Map(m.values)
	return nil
}

// structEncoder accumulates a record's named fields. Field names are
// already strings, so they go straight into the map.
type structEncoder struct {
	enc    *valueEncoder
	values map[string]wire.Value
}

func (s *structEncoder) Field(name string, v Marshaler) error {
	val, err := Marshal(v)
	if err != nil {
		return err
	}
	s.values[name] = val
	return nil
}

func (s *structEncoder) End() error {
	s.enc.out = wire.Map(s.values)
	return nil
}

// tupleVariantEncoder accumulates positional payloads and finalizes to
// the single-entry variant map holding a list.
type tupleVariantEncoder struct {
	enc    *valueEncoder
	tag    string
	values []wire.Value
}

func (t *tupleVariantEncoder) Element(v Marshaler) error {
	elem, err := Marshal(v)
	if err != nil {
		return err
	}
	t.values = append(t.values, elem)
	return nil
}

func (t *tupleVariantEncoder) End() error {
	t.enc.out = wire.Map(map[string]wire.Value{t.tag: wire.List(t.values...)})
	return nil
}

// structVariantEncoder accumulates named payloads and finalizes to the
// single-entry variant map holding a map.
type structVariantEncoder struct {
	enc    *valueEncoder
	tag    string
	values map[string]wire.Value
}

func (s *structVariantEncoder) Field(name string, v Marshaler) error {
	val, err := Marshal(v)
	if err != nil {
		return err
	}
	s.values[name] = val
	return nil
}

func (s *structVariantEncoder) End() error {
	s.enc.out = wire.Map(map[string]wire.Value{s.tag: wire.Map(s.values)})
	return nil
}
