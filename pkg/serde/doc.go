// Package serde is the bidirectional codec between in-memory values
// and Lattice wire values.
//
// Values never expose their concrete types to the codec. Instead they
// speak a visitation protocol: on the encode side a value implements
// Marshaler and describes itself to an Encoder with exactly one call;
// on the decode side a target shape implements Unmarshaler, asks a
// Decoder for the kind of value it expects, and receives exactly one
// Visitor callback. The codec is the driver between the two.
//
// # Wire conventions
//
//   - booleans -> BOOL
//   - integers and floats of every width -> N, as decimal text
//   - characters and strings -> S
//   - byte strings -> B
//   - absent optionals, unit, and unit structs -> NULL=true
//   - present optionals and newtype wrappers -> the inner value, unwrapped
//   - sequences, tuples, and tuple-structs -> L
//   - string-keyed maps and records -> M
//   - variants of every kind -> a single-entry M keyed by the tag,
//     holding NULL=true (unit), the payload (newtype), an L (tuple),
//     or an M (struct)
//
// # Failure semantics
//
// Every check fails fast with a static message carried by Error; there
// are no retries, partial decodes, or coercions beyond the numeric
// integer-then-float fallback and reading variant tags as strings.
//
// # Concurrency
//
// The codec is stateless between calls. Builders and cursors live only
// for the duration of one Marshal or Unmarshal, so concurrent calls on
// independent values need no synchronization. Recursion depth follows
// the nesting depth of the value; callers needing hard guarantees
// should bound input depth themselves.
package serde
