package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON renders the store API form of the value: a JSON object
// containing only the populated field, under its store field name.
// Bytes are base64-encoded, as the store expects.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind() {
	case KindBool:
		return json.Marshal(map[string]bool{"BOOL": *v.BOOL})
	case KindNumber:
		return json.Marshal(map[string]string{"N": *v.N})
	case KindString:
		return json.Marshal(map[string]string{"S": *v.S})
	case KindBytes:
		return json.Marshal(map[string][]byte{"B": v.B})
	case KindNull:
		return json.Marshal(map[string]bool{"NULL": *v.NULL})
	case KindList:
		return json.Marshal(map[string][]Value{"L": v.L})
	case KindMap:
		return json.Marshal(map[string]map[string]Value{"M": v.M})
	default:
		// An empty Value round-trips as an empty object so that
		// malformed producer output stays inspectable.
		return []byte("{}"), nil
	}
}

// UnmarshalJSON parses the store API form. Unknown fields are rejected:
// the store never emits them and silently dropping one would corrupt
// the value.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw struct {
		BOOL *bool            `json:"BOOL"`
		N    *string          `json:"N"`
		S    *string          `json:"S"`
		B    []byte           `json:"B"`
		NULL *bool            `json:"NULL"`
		L    []Value          `json:"L"`
		M    map[string]Value `json:"M"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("wire: invalid value JSON: %w", err)
	}
	*v = Value{
		BOOL: raw.BOOL,
		N:    raw.N,
		S:    raw.S,
		B:    raw.B,
		NULL: raw.NULL,
		L:    raw.L,
		M:    raw.M,
	}
	return nil
}
