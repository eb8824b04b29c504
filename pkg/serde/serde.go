package serde

// Marshaler is implemented by values that can describe their own shape.
// MarshalWire must make exactly one Encode* call on enc.
type Marshaler interface {
	MarshalWire(enc Encoder) error
}

// Unmarshaler is implemented by values that can reconstruct themselves
// from a shape description. UnmarshalWire must make exactly one Decode*
// call on dec.
type Unmarshaler interface {
	UnmarshalWire(dec Decoder) error
}

// Encoder receives one value description. A value describes itself by
// invoking exactly one method; compound shapes return a builder that
// accumulates children and is finalized with End. Builders must not be
// used after End.
type Encoder interface {
	EncodeBool(v bool) error
	EncodeInt(v int64) error
	EncodeUint(v uint64) error
	EncodeFloat32(v float32) error
	EncodeFloat64(v float64) error
	EncodeChar(v rune) error
	EncodeString(v string) error
	EncodeBytes(v []byte) error

	// EncodeNone records an absent optional value. EncodeSome encodes
	// the inner value with no wrapping.
	EncodeNone() error
	EncodeSome(v Marshaler) error

	// EncodeUnit records the unit value. EncodeUnitStruct records a
	// unit-typed named shape, which encodes identically.
	EncodeUnit() error
	EncodeUnitStruct(name string) error

	// EncodeNewtype encodes a single-field transparent wrapper: the
	// inner value, with no wrapping.
	EncodeNewtype(name string, v Marshaler) error

	// EncodeSeq begins a sequence, tuple, or tuple-struct of n
	// elements. n is a hint and may be negative when unknown.
	EncodeSeq(n int) (SeqEncoder, error)

	// EncodeMap begins a string-keyed map of n entries.
	EncodeMap(n int) (MapEncoder, error)

	// EncodeStruct begins a record with named fields.
	EncodeStruct(name string, n int) (StructEncoder, error)

	// Variant encoders. Every variant kind encodes as a single-entry
	// map keyed by the variant tag.
	EncodeUnitVariant(name, tag string) error
	EncodeNewtypeVariant(name, tag string, v Marshaler) error
	EncodeTupleVariant(name, tag string, n int) (SeqEncoder, error)
	EncodeStructVariant(name, tag string, n int) (StructEncoder, error)
}

// SeqEncoder accumulates the elements of a sequence, tuple,
// tuple-struct, or tuple variant.
type SeqEncoder interface {
	Element(v Marshaler) error
	End() error
}

// MapEncoder accumulates the entries of a string-keyed map. Key and
// Value alternate; each key must itself encode to a wire string.
type MapEncoder interface {
	Key(k Marshaler) error
	Value(v Marshaler) error
	End() error
}

// StructEncoder accumulates the named fields of a record or struct
// variant.
type StructEncoder interface {
	Field(name string, v Marshaler) error
	End() error
}

// Decoder drives a value's reconstruction. A target shape requests the
// kind of value it expects; the decoder validates the wire data and
// feeds the visitor exactly one matching callback.
//
// DecodeAny dispatches purely on which wire field is populated, in the
// fixed precedence boolean, list, map, number, null, string. The width
// and container requests (DecodeBool, DecodeInt, DecodeUint,
// DecodeFloat, DecodeString, DecodeSeq, DecodeMap, DecodeStruct,
// DecodeUnit) use the same self-describing dispatch; the remaining
// requests are shape-directed and require the matching wire field.
type Decoder interface {
	DecodeAny(v Visitor) error
	DecodeBool(v Visitor) error
	DecodeInt(v Visitor) error
	DecodeUint(v Visitor) error
	DecodeFloat(v Visitor) error
	DecodeString(v Visitor) error
	DecodeSeq(v Visitor) error
	DecodeMap(v Visitor) error
	DecodeStruct(name string, fields []string, v Visitor) error
	DecodeUnit(v Visitor) error

	// DecodeChar requires a wire string and yields its first
	// character. Longer strings are not rejected; the first character
	// wins.
	DecodeChar(v Visitor) error

	// DecodeBytes requires a wire byte string.
	DecodeBytes(v Visitor) error

	// DecodeOption yields VisitNil for an explicit NULL=true value.
	// Any other value, including one with no populated field, is
	// treated as present and recursed into via VisitSome.
	DecodeOption(v Visitor) error

	// DecodeNewtype recurses transparently into the same value.
	DecodeNewtype(name string, v Visitor) error

	// DecodeEnum requires a wire map and reads its first key/value
	// pair as variant tag and payload. A conforming producer always
	// writes exactly one entry; see EnumReader for the malformed case.
	DecodeEnum(name string, variants []string, v Visitor) error
}

// Visitor receives exactly one callback per decoded value.
type Visitor interface {
	VisitBool(v bool) error
	VisitInt(v int64) error
	VisitFloat(v float64) error
	VisitChar(v rune) error
	VisitString(v string) error
	VisitBytes(v []byte) error

	// VisitNil is delivered for null, unit, and absent optionals.
	VisitNil() error

	// VisitSome is delivered for a present optional; the decoder reads
	// the inner value.
	VisitSome(d Decoder) error

	// VisitNewtype is delivered for a transparent wrapper.
	VisitNewtype(d Decoder) error

	VisitSeq(seq SeqReader) error
	VisitMap(m MapReader) error
	VisitEnum(e EnumReader) error
}

// SeqReader is a cursor over the elements of a wire list.
type SeqReader interface {
	// NextElement decodes the next element into v. It returns false
	// with a nil error once the sequence is exhausted.
	NextElement(v Unmarshaler) (bool, error)
}

// MapReader is a pair of synchronized cursors over the entries of a
// wire map. Keys are always delivered as strings regardless of the
// target shape.
type MapReader interface {
	// NextKey decodes the next key into k. It returns false with a nil
	// error once the entries are exhausted.
	NextKey(k Unmarshaler) (bool, error)

	// NextValue decodes the value for the most recently read key.
	// Requesting a value before its key, or after the entries are
	// exhausted, fails.
	NextValue(v Unmarshaler) error
}

// EnumReader exposes the single tag/payload pair of a variant value.
//
// A wire map holding zero entries fails before the reader is built; a
// map holding more than one entry is ambiguous, and which pair is read
// is unspecified.
type EnumReader interface {
	// Tag decodes the variant tag into t (always as a string) and
	// returns the reader for the variant payload.
	Tag(t Unmarshaler) (VariantReader, error)
}

// VariantReader reads the payload of a variant according to its kind.
type VariantReader interface {
	// Unit requires the payload to be an explicit null.
	Unit() error

	// Newtype decodes the payload into v.
	Newtype(v Unmarshaler) error

	// Tuple requires a wire list payload and delivers VisitSeq.
	Tuple(v Visitor) error

	// Struct requires a wire map payload and delivers VisitMap.
	Struct(fields []string, v Visitor) error
}

// BaseVisitor rejects every callback with a descriptive error. Embed it
// to implement only the callbacks a shape accepts.
type BaseVisitor struct{}

func (BaseVisitor) VisitBool(bool) error { return NewError("Unexpected Boolean Value") }

func (BaseVisitor) VisitInt(int64) error { return NewError("Unexpected Integer Value") }

func (BaseVisitor) VisitFloat(float64) error { return NewError("Unexpected Float Value") }

func (BaseVisitor) VisitChar(rune) error { return NewError("Unexpected Character Value") }

func (BaseVisitor) VisitString(string) error { return NewError("Unexpected String Value") }

func (BaseVisitor) VisitBytes([]byte) error { return NewError("Unexpected Byte Vector Value") }

func (BaseVisitor) VisitNil() error { return NewError("Unexpected Null Value") }

func (BaseVisitor) VisitSome(Decoder) error { return NewError("Unexpected Optional Value") }

func (BaseVisitor) VisitNewtype(Decoder) error { return NewError("Unexpected Newtype Value") }

func (BaseVisitor) VisitSeq(SeqReader) error { return NewError("Unexpected List Value") }

func (BaseVisitor) VisitMap(MapReader) error { return NewError("Unexpected Map Value") }

func (BaseVisitor) VisitEnum(EnumReader) error { return NewError("Unexpected Variant Value") }
