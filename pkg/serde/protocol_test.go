package serde_test

// Hand-written protocol implementations covering every shape the codec
// supports. Production callers would normally reach for pkg/bind; the
// codec tests speak the protocol directly so each shape's encode and
// decode path is exercised without reflection in between.

import (
	"github.com/lattice-store/lattice-go/pkg/serde"
)

type boolVal bool

func (b boolVal) MarshalWire(e serde.Encoder) error { return e.EncodeBool(bool(b)) }

func (b *boolVal) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeBool(&boolVisitor{out: b})
}

type boolVisitor struct {
	serde.BaseVisitor
	out *boolVal
}

func (v *boolVisitor) VisitBool(b bool) error {
	*v.out = boolVal(b)
	return nil
}

type intVal int64

func (i intVal) MarshalWire(e serde.Encoder) error { return e.EncodeInt(int64(i)) }

func (i *intVal) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeInt(&intVisitor{out: i})
}

type intVisitor struct {
	serde.BaseVisitor
	out *intVal
}

func (v *intVisitor) VisitInt(n int64) error {
	*v.out = intVal(n)
	return nil
}

type uintVal uint64

func (u uintVal) MarshalWire(e serde.Encoder) error { return e.EncodeUint(uint64(u)) }

func (u *uintVal) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeUint(&uintVisitor{out: u})
}

type uintVisitor struct {
	serde.BaseVisitor
	out *uintVal
}

func (v *uintVisitor) VisitInt(n int64) error {
	*v.out = uintVal(n)
	return nil
}

type float32Val float32

func (f float32Val) MarshalWire(e serde.Encoder) error { return e.EncodeFloat32(float32(f)) }

func (f *float32Val) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeFloat(&float32Visitor{out: f})
}

type float32Visitor struct {
	serde.BaseVisitor
	out *float32Val
}

func (v *float32Visitor) VisitFloat(n float64) error {
	*v.out = float32Val(n)
	return nil
}

func (v *float32Visitor) VisitInt(n int64) error {
	*v.out = float32Val(n)
	return nil
}

type float64Val float64

func (f float64Val) MarshalWire(e serde.Encoder) error { return e.EncodeFloat64(float64(f)) }

func (f *float64Val) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeFloat(&float64Visitor{out: f})
}

type float64Visitor struct {
	serde.BaseVisitor
	out *float64Val
}

func (v *float64Visitor) VisitFloat(n float64) error {
	*v.out = float64Val(n)
	return nil
}

func (v *float64Visitor) VisitInt(n int64) error {
	*v.out = float64Val(n)
	return nil
}

type charVal rune

func (c charVal) MarshalWire(e serde.Encoder) error { return e.EncodeChar(rune(c)) }

func (c *charVal) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeChar(&charVisitor{out: c})
}

type charVisitor struct {
	serde.BaseVisitor
	out *charVal
}

func (v *charVisitor) VisitChar(r rune) error {
	*v.out = charVal(r)
	return nil
}

type strVal string

func (s strVal) MarshalWire(e serde.Encoder) error { return e.EncodeString(string(s)) }

func (s *strVal) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeString(&strVisitor{out: s})
}

type strVisitor struct {
	serde.BaseVisitor
	out *strVal
}

func (v *strVisitor) VisitString(s string) error {
	*v.out = strVal(s)
	return nil
}

type bytesVal []byte

func (b bytesVal) MarshalWire(e serde.Encoder) error { return e.EncodeBytes(b) }

func (b *bytesVal) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeBytes(&bytesVisitor{out: b})
}

type bytesVisitor struct {
	serde.BaseVisitor
	out *bytesVal
}

func (v *bytesVisitor) VisitBytes(b []byte) error {
	out := make(bytesVal, len(b))
	copy(out, b)
	*v.out = out
	return nil
}

// unitVal is the unit value.
type unitVal struct{}

func (unitVal) MarshalWire(e serde.Encoder) error { return e.EncodeUnit() }

func (*unitVal) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeUnit(&nilVisitor{})
}

// markerVal is a unit-typed named shape.
type markerVal struct{}

func (markerVal) MarshalWire(e serde.Encoder) error { return e.EncodeUnitStruct("Marker") }

func (*markerVal) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeUnit(&nilVisitor{})
}

type nilVisitor struct {
	serde.BaseVisitor
}

func (*nilVisitor) VisitNil() error { return nil }

// optBool is an optional boolean.
type optBool struct {
	Valid bool
	V     bool
}

func (o optBool) MarshalWire(e serde.Encoder) error {
	if !o.Valid {
		return e.EncodeNone()
	}
	return e.EncodeSome(boolVal(o.V))
}

func (o *optBool) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeOption(&optBoolVisitor{out: o})
}

type optBoolVisitor struct {
	serde.BaseVisitor
	out *optBool
}

func (v *optBoolVisitor) VisitNil() error {
	*v.out = optBool{}
	return nil
}

func (v *optBoolVisitor) VisitSome(d serde.Decoder) error {
	var b boolVal
	if err := b.UnmarshalWire(d); err != nil {
		return err
	}
	*v.out = optBool{Valid: true, V: bool(b)}
	return nil
}

// wrapped is a transparent newtype around an integer.
type wrapped struct {
	N int64
}

func (w wrapped) MarshalWire(e serde.Encoder) error {
	return e.EncodeNewtype("Wrapped", intVal(w.N))
}

func (w *wrapped) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeNewtype("Wrapped", &wrappedVisitor{out: w})
}

type wrappedVisitor struct {
	serde.BaseVisitor
	out *wrapped
}

func (v *wrappedVisitor) VisitNewtype(d serde.Decoder) error {
	var n intVal
	if err := n.UnmarshalWire(d); err != nil {
		return err
	}
	v.out.N = int64(n)
	return nil
}

// intList is a sequence of integers.
type intList []int64

func (l intList) MarshalWire(e serde.Encoder) error {
	se, err := e.EncodeSeq(len(l))
	if err != nil {
		return err
	}
	for _, n := range l {
		if err := se.Element(intVal(n)); err != nil {
			return err
		}
	}
	return se.End()
}

func (l *intList) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeSeq(&intListVisitor{out: l})
}

type intListVisitor struct {
	serde.BaseVisitor
	out *intList
}

func (v *intListVisitor) VisitSeq(seq serde.SeqReader) error {
	out := intList{}
	for {
		var n intVal
		ok, err := seq.NextElement(&n)
		if err != nil {
			return err
		}
		if !ok {
			*v.out = out
			return nil
		}
		out = append(out, int64(n))
	}
}

// pairVal is the tuple (string, integer).
type pairVal struct {
	S string
	N int64
}

func (p pairVal) MarshalWire(e serde.Encoder) error {
	se, err := e.EncodeSeq(2)
	if err != nil {
		return err
	}
	if err := se.Element(strVal(p.S)); err != nil {
		return err
	}
	if err := se.Element(intVal(p.N)); err != nil {
		return err
	}
	return se.End()
}

func (p *pairVal) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeSeq(&pairVisitor{out: p})
}

type pairVisitor struct {
	serde.BaseVisitor
	out *pairVal
}

func (v *pairVisitor) VisitSeq(seq serde.SeqReader) error {
	var s strVal
	if ok, err := seq.NextElement(&s); err != nil {
		return err
	} else if !ok {
		return serde.NewError("Tuple Element Expected")
	}
	var n intVal
	if ok, err := seq.NextElement(&n); err != nil {
		return err
	} else if !ok {
		return serde.NewError("Tuple Element Expected")
	}
	v.out.S = string(s)
	v.out.N = int64(n)
	return nil
}

// countMap is a string-keyed map of integers.
type countMap map[string]int64

func (m countMap) MarshalWire(e serde.Encoder) error {
	me, err := e.EncodeMap(len(m))
	if err != nil {
		return err
	}
	for k, n := range m {
		if err := me.Key(strVal(k)); err != nil {
			return err
		}
		if err := me.Value(intVal(n)); err != nil {
			return err
		}
	}
	return me.End()
}

func (m *countMap) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeMap(&countMapVisitor{out: m})
}

type countMapVisitor struct {
	serde.BaseVisitor
	out *countMap
}

func (v *countMapVisitor) VisitMap(m serde.MapReader) error {
	out := countMap{}
	for {
		var k strVal
		ok, err := m.NextKey(&k)
		if err != nil {
			return err
		}
		if !ok {
			*v.out = out
			return nil
		}
		var n intVal
		if err := m.NextValue(&n); err != nil {
			return err
		}
		out[string(k)] = int64(n)
	}
}

// record is a named-field record.
type record struct {
	A string
	B int64
}

func (r record) MarshalWire(e serde.Encoder) error {
	se, err := e.EncodeStruct("Record", 2)
	if err != nil {
		return err
	}
	if err := se.Field("a", strVal(r.A)); err != nil {
		return err
	}
	if err := se.Field("b", intVal(r.B)); err != nil {
		return err
	}
	return se.End()
}

func (r *record) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeStruct("Record", []string{"a", "b"}, &recordVisitor{out: r})
}

type recordVisitor struct {
	serde.BaseVisitor
	out *record
}

func (v *recordVisitor) VisitMap(m serde.MapReader) error {
	for {
		var k strVal
		ok, err := m.NextKey(&k)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch string(k) {
		case "a":
			var s strVal
			if err := m.NextValue(&s); err != nil {
				return err
			}
			v.out.A = string(s)
		case "b":
			var n intVal
			if err := m.NextValue(&n); err != nil {
				return err
			}
			v.out.B = int64(n)
		default:
			return serde.Errorf("Unknown Field %q", string(k))
		}
	}
}

// paint is a tagged union with all four variant kinds:
//
//	Matte                     unit variant
//	Gloss(color)              newtype variant
//	Blend(color, ratio)       tuple variant
//	Custom{color, coats}      struct variant
type paint struct {
	Kind  string
	Color string
	Ratio int64
	Coats int64
}

func (p paint) MarshalWire(e serde.Encoder) error {
	switch p.Kind {
	case "Matte":
		return e.EncodeUnitVariant("Paint", "Matte")
	case "Gloss":
		return e.EncodeNewtypeVariant("Paint", "Gloss", strVal(p.Color))
	case "Blend":
		se, err := e.EncodeTupleVariant("Paint", "Blend", 2)
		if err != nil {
			return err
		}
		if err := se.Element(strVal(p.Color)); err != nil {
			return err
		}
		if err := se.Element(intVal(p.Ratio)); err != nil {
			return err
		}
		return se.End()
	case "Custom":
		se, err := e.EncodeStructVariant("Paint", "Custom", 2)
		if err != nil {
			return err
		}
		if err := se.Field("color", strVal(p.Color)); err != nil {
			return err
		}
		if err := se.Field("coats", intVal(p.Coats)); err != nil {
			return err
		}
		return se.End()
	default:
		return serde.Errorf("Unknown Variant %q", p.Kind)
	}
}

var paintVariants = []string{"Matte", "Gloss", "Blend", "Custom"}

func (p *paint) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeEnum("Paint", paintVariants, &paintVisitor{out: p})
}

type paintVisitor struct {
	serde.BaseVisitor
	out *paint
}

func (v *paintVisitor) VisitEnum(e serde.EnumReader) error {
	var tag strVal
	vr, err := e.Tag(&tag)
	if err != nil {
		return err
	}
	v.out.Kind = string(tag)
	switch string(tag) {
	case "Matte":
		return vr.Unit()
	case "Gloss":
		var color strVal
		if err := vr.Newtype(&color); err != nil {
			return err
		}
		v.out.Color = string(color)
		return nil
	case "Blend":
		return vr.Tuple(&blendVisitor{out: v.out})
	case "Custom":
		return vr.Struct([]string{"color", "coats"}, &customVisitor{out: v.out})
	default:
		return serde.Errorf("Unknown Variant %q", string(tag))
	}
}

type blendVisitor struct {
	serde.BaseVisitor
	out *paint
}

func (v *blendVisitor) VisitSeq(seq serde.SeqReader) error {
	var color strVal
	if ok, err := seq.NextElement(&color); err != nil {
		return err
	} else if !ok {
		return serde.NewError("Tuple Element Expected")
	}
	var ratio intVal
	if ok, err := seq.NextElement(&ratio); err != nil {
		return err
	} else if !ok {
		return serde.NewError("Tuple Element Expected")
	}
	v.out.Color = string(color)
	v.out.Ratio = int64(ratio)
	return nil
}

type customVisitor struct {
	serde.BaseVisitor
	out *paint
}

func (v *customVisitor) VisitMap(m serde.MapReader) error {
	for {
		var k strVal
		ok, err := m.NextKey(&k)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch string(k) {
		case "color":
			var color strVal
			if err := m.NextValue(&color); err != nil {
				return err
			}
			v.out.Color = string(color)
		case "coats":
			var coats intVal
			if err := m.NextValue(&coats); err != nil {
				return err
			}
			v.out.Coats = int64(coats)
		default:
			return serde.Errorf("Unknown Field %q", string(k))
		}
	}
}

// anyCapture decodes through the self-describing dispatch, keeping
// whatever callback arrives. Used for the "any" dispatch tests.
type anyCapture struct {
	Kind string
	B    bool
	I    int64
	F    float64
	S    string
}

func (a *anyCapture) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeAny(&anyCaptureVisitor{out: a})
}

type anyCaptureVisitor struct {
	serde.BaseVisitor
	out *anyCapture
}

func (v *anyCaptureVisitor) VisitBool(b bool) error {
	v.out.Kind = "bool"
	v.out.B = b
	return nil
}

func (v *anyCaptureVisitor) VisitInt(n int64) error {
	v.out.Kind = "int"
	v.out.I = n
	return nil
}

func (v *anyCaptureVisitor) VisitFloat(f float64) error {
	v.out.Kind = "float"
	v.out.F = f
	return nil
}

func (v *anyCaptureVisitor) VisitString(s string) error {
	v.out.Kind = "string"
	v.out.S = s
	return nil
}

func (v *anyCaptureVisitor) VisitNil() error {
	v.out.Kind = "nil"
	return nil
}

func (v *anyCaptureVisitor) VisitSeq(seq serde.SeqReader) error {
	v.out.Kind = "seq"
	for {
		ok, err := seq.NextElement(&anyCapture{})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

func (v *anyCaptureVisitor) VisitMap(m serde.MapReader) error {
	v.out.Kind = "map"
	for {
		var k strVal
		ok, err := m.NextKey(&k)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := m.NextValue(&anyCapture{}); err != nil {
			return err
		}
	}
}
