package bind

import (
	"reflect"

	"github.com/lattice-store/lattice-go/pkg/serde"
	"github.com/lattice-store/lattice-go/pkg/wire"
)

// Unmarshal reconstructs an arbitrary Go value from a wire value. out
// must be a non-nil pointer to the target.
func Unmarshal(val wire.Value, out any) error {
	return serde.Unmarshal(val, Target(out))
}

// Target wraps a pointer as a serde.Unmarshaler driven by reflection,
// for APIs that take the protocol interface directly. out must be a
// non-nil pointer; anything else fails when decoding starts.
func Target(out any) serde.Unmarshaler {
	return lazyTarget{out: out}
}

type lazyTarget struct {
	out any
}

func (l lazyTarget) UnmarshalWire(dec serde.Decoder) error {
	rv := reflect.ValueOf(l.out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return serde.NewError("bind: target must be a non-nil pointer")
	}
	return target{rv: rv.Elem()}.UnmarshalWire(dec)
}

// target asks the decoder for the shape its Go type expects. rv is
// always addressable.
type target struct {
	rv reflect.Value
}

func (t target) UnmarshalWire(dec serde.Decoder) error {
	if t.rv.CanAddr() {
		if u, ok := t.rv.Addr().Interface().(serde.Unmarshaler); ok {
			return u.UnmarshalWire(dec)
		}
	}

	switch t.rv.Kind() {
	case reflect.Bool:
		return dec.DecodeBool(&assign{rv: t.rv})
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return dec.DecodeInt(&assign{rv: t.rv})
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return dec.DecodeUint(&assign{rv: t.rv})
	case reflect.Float32, reflect.Float64:
		return dec.DecodeFloat(&assign{rv: t.rv})
	case reflect.String:
		return dec.DecodeString(&assign{rv: t.rv})
	case reflect.Pointer:
		return dec.DecodeOption(&assign{rv: t.rv})
	case reflect.Slice:
		if t.rv.Type().Elem().Kind() == reflect.Uint8 {
			return dec.DecodeBytes(&assign{rv: t.rv})
		}
		return dec.DecodeSeq(&assign{rv: t.rv})
	case reflect.Array:
		return dec.DecodeSeq(&assign{rv: t.rv})
	case reflect.Map:
		return dec.DecodeMap(&assign{rv: t.rv})
	case reflect.Struct:
		ty := t.rv.Type()
		return dec.DecodeStruct(ty.Name(), structFieldNames(ty), &assign{rv: t.rv})
	case reflect.Interface:
		if t.rv.NumMethod() == 0 {
			return dec.DecodeAny(&anyVisitor{rv: t.rv})
		}
		return serde.Errorf("bind: cannot decode into non-empty interface %s", t.rv.Type())
	default:
		return serde.Errorf("bind: unsupported kind %s", t.rv.Kind())
	}
}

func structFieldNames(t reflect.Type) []string {
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name, ok := fieldName(t.Field(i)); ok {
			names = append(names, name)
		}
	}
	return names
}

// assign writes one decoded callback into a typed Go target. Callbacks
// that do not fit the target's kind fall through to BaseVisitor's
// rejections.
type assign struct {
	serde.BaseVisitor
	rv reflect.Value
}

func (a *assign) VisitBool(v bool) error {
	if a.rv.Kind() != reflect.Bool {
		return a.BaseVisitor.VisitBool(v)
	}
	a.rv.SetBool(v)
	return nil
}

func (a *assign) VisitInt(v int64) error {
	switch a.rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if a.rv.OverflowInt(v) {
			return serde.Errorf("bind: integer %d overflows %s", v, a.rv.Type())
		}
		a.rv.SetInt(v)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v < 0 || a.rv.OverflowUint(uint64(v)) {
			return serde.Errorf("bind: integer %d overflows %s", v, a.rv.Type())
		}
		a.rv.SetUint(uint64(v))
		return nil
	case reflect.Float32, reflect.Float64:
		a.rv.SetFloat(float64(v))
		return nil
	default:
		return a.BaseVisitor.VisitInt(v)
	}
}

func (a *assign) VisitFloat(v float64) error {
	switch a.rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if a.rv.OverflowFloat(v) {
			return serde.Errorf("bind: float %g overflows %s", v, a.rv.Type())
		}
		a.rv.SetFloat(v)
		return nil
	default:
		return a.BaseVisitor.VisitFloat(v)
	}
}

func (a *assign) VisitString(v string) error {
	if a.rv.Kind() != reflect.String {
		return a.BaseVisitor.VisitString(v)
	}
	a.rv.SetString(v)
	return nil
}

func (a *assign) VisitBytes(v []byte) error {
	if a.rv.Kind() != reflect.Slice || a.rv.Type().Elem().Kind() != reflect.Uint8 {
		return a.BaseVisitor.VisitBytes(v)
	}
	out := make([]byte, len(v))
	copy(out, v)
	a.rv.SetBytes(out)
	return nil
}

func (a *assign) VisitNil() error {
	if a.rv.Kind() != reflect.Pointer {
		return a.BaseVisitor.VisitNil()
	}
	a.rv.SetZero()
	return nil
}

func (a *assign) VisitSome(d serde.Decoder) error {
	if a.rv.Kind() != reflect.Pointer {
		return a.BaseVisitor.VisitSome(d)
	}
	if a.rv.IsNil() {
		a.rv.Set(reflect.New(a.rv.Type().Elem()))
	}
	return target{rv: a.rv.Elem()}.UnmarshalWire(d)
}

func (a *assign) VisitNewtype(d serde.Decoder) error {
	return target{rv: a.rv}.UnmarshalWire(d)
}

func (a *assign) VisitSeq(seq serde.SeqReader) error {
	switch a.rv.Kind() {
	case reflect.Slice:
		elemType := a.rv.Type().Elem()
		out := reflect.MakeSlice(a.rv.Type(), 0, 0)
		for {
			elem := reflect.New(elemType)
			ok, err := seq.NextElement(target{rv: elem.Elem()})
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			out = reflect.Append(out, elem.Elem())
		}
		a.rv.Set(out)
		return nil
	case reflect.Array:
		n := 0
		for {
			if n >= a.rv.Len() {
				// Probe for a trailing element so oversized input
				// fails instead of truncating.
				var sink discard
				ok, err := seq.NextElement(sink)
				if err != nil {
					return err
				}
				if ok {
					return serde.Errorf("bind: too many elements for %s", a.rv.Type())
				}
				return nil
			}
			ok, err := seq.NextElement(target{rv: a.rv.Index(n)})
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			n++
		}
	default:
		return a.BaseVisitor.VisitSeq(seq)
	}
}

func (a *assign) VisitMap(m serde.MapReader) error {
	switch a.rv.Kind() {
	case reflect.Map:
		keyType := a.rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return serde.Errorf("bind: map key type %s is not a string", keyType)
		}
		elemType := a.rv.Type().Elem()
		out := reflect.MakeMap(a.rv.Type())
		for {
			key := reflect.New(keyType)
			ok, err := m.NextKey(target{rv: key.Elem()})
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			val := reflect.New(elemType)
			if err := m.NextValue(target{rv: val.Elem()}); err != nil {
				return err
			}
			out.SetMapIndex(key.Elem(), val.Elem())
		}
		a.rv.Set(out)
		return nil
	case reflect.Struct:
		return a.visitStructMap(m)
	default:
		return a.BaseVisitor.VisitMap(m)
	}
}

func (a *assign) visitStructMap(m serde.MapReader) error {
	byName := make(map[string]int)
	t := a.rv.Type()
	for i := 0; i < t.NumField(); i++ {
		if name, ok := fieldName(t.Field(i)); ok {
			byName[name] = i
		}
	}
	for {
		var name string
		ok, err := m.NextKey(target{rv: reflect.ValueOf(&name).Elem()})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		idx, known := byName[name]
		if !known {
			// Unknown keys are skipped for forward compatibility.
			if err := m.NextValue(discard{}); err != nil {
				return err
			}
			continue
		}
		if err := m.NextValue(target{rv: a.rv.Field(idx)}); err != nil {
			return err
		}
	}
}

// anyVisitor builds untyped Go values for interface{} targets during
// self-describing decoding.
type anyVisitor struct {
	serde.BaseVisitor
	rv reflect.Value
}

func (a *anyVisitor) set(v any) error {
	if v == nil {
		a.rv.SetZero()
		return nil
	}
	a.rv.Set(reflect.ValueOf(v))
	return nil
}

func (a *anyVisitor) VisitBool(v bool) error { return a.set(v) }

func (a *anyVisitor) VisitInt(v int64) error { return a.set(v) }

func (a *anyVisitor) VisitFloat(v float64) error { return a.set(v) }

func (a *anyVisitor) VisitString(v string) error { return a.set(v) }

func (a *anyVisitor) VisitBytes(v []byte) error { return a.set(append([]byte(nil), v...)) }

func (a *anyVisitor) VisitNil() error { return a.set(nil) }

func (a *anyVisitor) VisitSeq(seq serde.SeqReader) error {
	out := []any{}
	for {
		var elem any
		ok, err := seq.NextElement(target{rv: reflect.ValueOf(&elem).Elem()})
		if err != nil {
			return err
		}
		if !ok {
			return a.set(out)
		}
		out = append(out, elem)
	}
}

func (a *anyVisitor) VisitMap(m serde.MapReader) error {
	out := map[string]any{}
	for {
		var key string
		ok, err := m.NextKey(target{rv: reflect.ValueOf(&key).Elem()})
		if err != nil {
			return err
		}
		if !ok {
			return a.set(out)
		}
		var val any
		if err := m.NextValue(target{rv: reflect.ValueOf(&val).Elem()}); err != nil {
			return err
		}
		out[key] = val
	}
}

// discard drains one value without keeping it.
type discard struct{}

func (discard) UnmarshalWire(dec serde.Decoder) error {
	return dec.DecodeAny(discardVisitor{})
}

type discardVisitor struct{}

func (discardVisitor) VisitBool(bool) error { return nil }

func (discardVisitor) VisitInt(int64) error { return nil }

func (discardVisitor) VisitFloat(float64) error { return nil }

func (discardVisitor) VisitChar(rune) error { return nil }

func (discardVisitor) VisitString(string) error { return nil }

func (discardVisitor) VisitBytes([]byte) error { return nil }

func (discardVisitor) VisitNil() error { return nil }

func (discardVisitor) VisitSome(d serde.Decoder) error { return d.DecodeAny(discardVisitor{}) }

func (discardVisitor) VisitNewtype(d serde.Decoder) error { return d.DecodeAny(discardVisitor{}) }

func (discardVisitor) VisitSeq(seq serde.SeqReader) error {
	for {
		ok, err := seq.NextElement(discard{})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

func (discardVisitor) VisitMap(m serde.MapReader) error {
	for {
		ok, err := m.NextKey(discard{})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := m.NextValue(discard{}); err != nil {
			return err
		}
	}
}

func (discardVisitor) VisitEnum(serde.EnumReader) error { return nil }
