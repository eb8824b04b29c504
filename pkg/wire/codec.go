package wire

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for wire values.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for wire values.
var decMode cbor.DecMode

func init() {
	var err error

	// Deterministic output: the same value tree always frames to the
	// same bytes, so frames can be compared and deduplicated upstream.
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient decoding for forward compatibility.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder creates a CBOR encoder for wire values that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder for wire values that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// EncodeValue frames a single Value to CBOR bytes.
func EncodeValue(v Value) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	return data, nil
}

// DecodeValue parses a CBOR frame produced by EncodeValue.
func DecodeValue(data []byte) (Value, error) {
	var v Value
	if err := Unmarshal(data, &v); err != nil {
		return Value{}, fmt.Errorf("failed to decode value: %w", err)
	}
	return v, nil
}

// Clone creates a deep copy of a Value by re-encoding it. Useful for
// detaching a value from a tree that is about to be handed off.
func Clone(v Value) (Value, error) {
	data, err := Marshal(v)
	if err != nil {
		return Value{}, err
	}
	var out Value
	err = Unmarshal(data, &out)
	return out, err
}
