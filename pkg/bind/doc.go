// Package bind adapts plain Go values to the serde visitation
// protocol, playing the role of the reflection mechanism the codec
// assumes but does not contain. The codec never imports this package.
//
// # Supported shapes
//
//   - bool, all int/uint widths, float32/float64, string
//   - []byte (wire byte string)
//   - pointers, treated as optionals (nil encodes as null)
//   - slices and arrays (wire lists)
//   - string-keyed maps and structs (wire maps)
//   - any, decoded through the self-describing dispatch into
//     bool/int64/float64/string/[]byte/[]any/map[string]any/nil
//
// Types implementing serde.Marshaler or serde.Unmarshaler are handed
// the protocol directly, so hand-written shapes (characters, variants,
// newtypes) compose with reflected ones.
//
// # Struct tags
//
// Field names come from the `lattice` struct tag when present;
// a tag of "-" skips the field. Unexported fields are skipped.
//
// # Width checks
//
// The wire carries integers as int64. Narrower targets are
// range-checked on assignment and fail on overflow; integer wire
// values assign to float targets, but float wire values never assign
// to integer targets.
package bind
