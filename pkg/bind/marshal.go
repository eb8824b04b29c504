package bind

import (
	"reflect"
	"strings"

	"github.com/lattice-store/lattice-go/pkg/serde"
	"github.com/lattice-store/lattice-go/pkg/wire"
)

var marshalerType = reflect.TypeOf((*serde.Marshaler)(nil)).Elem()

// Marshal serializes an arbitrary Go value into a wire value by
// driving it through the visitation protocol.
func Marshal(v any) (wire.Value, error) {
	return serde.Marshal(Adapt(v))
}

// Adapt wraps a Go value as a serde.Marshaler driven by reflection,
// for APIs that take the protocol interface directly.
func Adapt(v any) serde.Marshaler {
	return reflectValue{rv: reflect.ValueOf(v)}
}

// reflectValue describes one Go value to an Encoder.
type reflectValue struct {
	rv reflect.Value
}

func (m reflectValue) MarshalWire(enc serde.Encoder) error {
	rv := m.rv
	if !rv.IsValid() {
		return enc.EncodeNone()
	}
	if rv.Type().Implements(marshalerType) {
		return rv.Interface().(serde.Marshaler).MarshalWire(enc)
	}

	switch rv.Kind() {
	case reflect.Bool:
		return enc.EncodeBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return enc.EncodeInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return enc.EncodeUint(rv.Uint())
	case reflect.Float32:
		return enc.EncodeFloat32(float32(rv.Float()))
	case reflect.Float64:
		return enc.EncodeFloat64(rv.Float())
	case reflect.String:
		return enc.EncodeString(rv.String())
	case reflect.Pointer:
		if rv.IsNil() {
			return enc.EncodeNone()
		}
		return enc.EncodeSome(reflectValue{rv: rv.Elem()})
	case reflect.Interface:
		if rv.IsNil() {
			return enc.EncodeNone()
		}
		return reflectValue{rv: rv.Elem()}.MarshalWire(enc)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return enc.EncodeBytes(rv.Bytes())
		}
		return m.marshalSeq(enc)
	case reflect.Array:
		return m.marshalSeq(enc)
	case reflect.Map:
		return m.marshalMap(enc)
	case reflect.Struct:
		return m.marshalStruct(enc)
	default:
		return serde.Errorf("bind: unsupported kind %s", rv.Kind())
	}
}

func (m reflectValue) marshalSeq(enc serde.Encoder) error {
	se, err := enc.EncodeSeq(m.rv.Len())
	if err != nil {
		return err
	}
	for i := 0; i < m.rv.Len(); i++ {
		if err := se.Element(reflectValue{rv: m.rv.Index(i)}); err != nil {
			return err
		}
	}
	return se.End()
}

func (m reflectValue) marshalMap(enc serde.Encoder) error {
	me, err := enc.EncodeMap(m.rv.Len())
	if err != nil {
		return err
	}
	iter := m.rv.MapRange()
	for iter.Next() {
		if err := me.Key(reflectValue{rv: iter.Key()}); err != nil {
			return err
		}
		if err := me.Value(reflectValue{rv: iter.Value()}); err != nil {
			return err
		}
	}
	return me.End()
}

func (m reflectValue) marshalStruct(enc serde.Encoder) error {
	t := m.rv.Type()
	se, err := enc.EncodeStruct(t.Name(), t.NumField())
	if err != nil {
		return err
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		if err := se.Field(name, reflectValue{rv: m.rv.Field(i)}); err != nil {
			return err
		}
	}
	return se.End()
}

// fieldName resolves the wire name of a struct field from its lattice
// tag, falling back to the Go name. The second return is false for
// skipped fields.
func fieldName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	tag := f.Tag.Get("lattice")
	if tag == "-" {
		return "", false
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, true
	}
	return f.Name, true
}
