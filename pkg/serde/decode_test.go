package serde_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-store/lattice-go/pkg/serde"
	"github.com/lattice-store/lattice-go/pkg/wire"
)

func TestDecodeAnyDispatch(t *testing.T) {
	tests := []struct {
		name string
		val  wire.Value
		want anyCapture
	}{
		{"bool", wire.Bool(true), anyCapture{Kind: "bool", B: true}},
		{"integer number", wire.Number("42"), anyCapture{Kind: "int", I: 42}},
		{"float number", wire.Number("1.5"), anyCapture{Kind: "float", F: 1.5}},
		{"string", wire.String("hi"), anyCapture{Kind: "string", S: "hi"}},
		{"null", wire.Null(), anyCapture{Kind: "nil"}},
		{"list", wire.List(wire.Number("1")), anyCapture{Kind: "seq"}},
		{"map", wire.Map(map[string]wire.Value{"k": wire.Bool(false)}), anyCapture{Kind: "map"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out anyCapture
			require.NoError(t, serde.Unmarshal(tt.val, &out))
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDecodeAnyErrors(t *testing.T) {
	t.Run("empty value", func(t *testing.T) {
		var out anyCapture
		err := serde.Unmarshal(wire.Value{}, &out)
		assert.Equal(t, serde.NewError("Supported Value Expected"), err)
	})

	t.Run("bad number text", func(t *testing.T) {
		var out anyCapture
		err := serde.Unmarshal(wire.Number("not-a-number"), &out)
		assert.Equal(t, serde.NewError("Numeric Value Expected"), err)
	})
}

func TestDecodeChar(t *testing.T) {
	t.Run("first character wins", func(t *testing.T) {
		// Longer strings are not rejected.
		var out charVal
		require.NoError(t, serde.Unmarshal(wire.String("abc"), &out))
		assert.Equal(t, charVal('a'), out)
	})

	t.Run("empty string", func(t *testing.T) {
		var out charVal
		err := serde.Unmarshal(wire.String(""), &out)
		assert.Equal(t, serde.NewError("Non-Zero Length String Expected"), err)
	})

	t.Run("not a string", func(t *testing.T) {
		var out charVal
		err := serde.Unmarshal(wire.Number("7"), &out)
		assert.Equal(t, serde.NewError("String Value Expected (Char)"), err)
	})
}

func TestDecodeBytesErrors(t *testing.T) {
	var out bytesVal
	err := serde.Unmarshal(wire.String("abc"), &out)
	assert.Equal(t, serde.NewError("Byte Vector Value Expected"), err)
}

func TestDecodeOption(t *testing.T) {
	t.Run("null is absent", func(t *testing.T) {
		var out optBool
		require.NoError(t, serde.Unmarshal(wire.Null(), &out))
		assert.Equal(t, optBool{}, out)
	})

	t.Run("false null flag is present", func(t *testing.T) {
		// A populated NULL field holding false does not occur in
		// well-formed values, but decoding treats it as present and
		// recurses; the boolean target then rejects the null.
		f := false
		var out optBool
		err := serde.Unmarshal(wire.Value{NULL: &f}, &out)
		assert.Equal(t, serde.NewError("Unexpected Null Value"), err)
	})

	t.Run("empty value is present", func(t *testing.T) {
		// An all-absent value is treated as present; the recursion
		// then fails on it.
		var out optBool
		err := serde.Unmarshal(wire.Value{}, &out)
		assert.Equal(t, serde.NewError("Supported Value Expected"), err)
	})
}

func TestDecodeEnumErrors(t *testing.T) {
	t.Run("not a map", func(t *testing.T) {
		var out paint
		err := serde.Unmarshal(wire.String("Matte"), &out)
		assert.Equal(t, serde.NewError("Map Value Expected"), err)
	})

	t.Run("empty map", func(t *testing.T) {
		var out paint
		err := serde.Unmarshal(wire.Map(nil), &out)
		assert.Equal(t, serde.NewError("Key/Value Expected"), err)
	})

	t.Run("unit variant with non-null payload", func(t *testing.T) {
		var out paint
		err := serde.Unmarshal(wire.Map(map[string]wire.Value{
			"Matte": wire.Number("1"),
		}), &out)
		assert.Equal(t, serde.NewError("Null Value Expected"), err)
	})

	t.Run("tuple variant with non-list payload", func(t *testing.T) {
		var out paint
		err := serde.Unmarshal(wire.Map(map[string]wire.Value{
			"Blend": wire.String("blue"),
		}), &out)
		assert.Equal(t, serde.NewError("List Value Expected"), err)
	})

	t.Run("struct variant with non-map payload", func(t *testing.T) {
		var out paint
		err := serde.Unmarshal(wire.Map(map[string]wire.Value{
			"Custom": wire.List(),
		}), &out)
		assert.Equal(t, serde.NewError("Map Value Expected"), err)
	})
}

// valueBeforeKey drives the map reader out of protocol order.
type valueBeforeKey struct{}

func (valueBeforeKey) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeMap(valueBeforeKeyVisitor{})
}

type valueBeforeKeyVisitor struct {
	serde.BaseVisitor
}

func (valueBeforeKeyVisitor) VisitMap(m serde.MapReader) error {
	var n intVal
	return m.NextValue(&n)
}

// valuePastEnd reads one key and then asks for two values.
type valuePastEnd struct{}

func (valuePastEnd) UnmarshalWire(d serde.Decoder) error {
	return d.DecodeMap(valuePastEndVisitor{})
}

type valuePastEndVisitor struct {
	serde.BaseVisitor
}

func (valuePastEndVisitor) VisitMap(m serde.MapReader) error {
	var k strVal
	if _, err := m.NextKey(&k); err != nil {
		return err
	}
	var n intVal
	if err := m.NextValue(&n); err != nil {
		return err
	}
	return m.NextValue(&n)
}

func TestMapReaderCursorContract(t *testing.T) {
	val := wire.Map(map[string]wire.Value{"x": wire.Number("1")})

	t.Run("value before key", func(t *testing.T) {
		err := serde.Unmarshal(val, valueBeforeKey{})
		assert.Equal(t, serde.NewError("Value Expected"), err)
	})

	t.Run("more values than keys", func(t *testing.T) {
		err := serde.Unmarshal(val, valuePastEnd{})
		assert.Equal(t, serde.NewError("Value Expected"), err)
	})
}

func TestDecodeDoesNotMutateInput(t *testing.T) {
	inner := map[string]wire.Value{
		"a": wire.String("hello"),
		"b": wire.Number("1"),
	}
	val := wire.Map(inner)
	snapshot, err := wire.Clone(val)
	require.NoError(t, err)

	var out record
	require.NoError(t, serde.Unmarshal(val, &out))
	assert.True(t, val.Equal(snapshot))
}
