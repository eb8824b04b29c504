// Package wire defines the tagged-union value type exchanged with the
// Lattice key/attribute store.
//
// # Value
//
// A Value is a closed union with at most one populated field among BOOL,
// N (decimal number text), S (string), B (raw bytes), NULL, L (list) and
// M (string-keyed map). The field names match the store API exactly and
// must not be renamed. A Value with no populated field, or more than one,
// is a producer bug; consumers treat it as unrecognized.
//
// # Representations
//
// Two byte-level representations are provided:
//   - JSON with the store's field names (the store API form), emitting
//     only the populated field.
//   - Deterministic CBOR with integer keys, used as the compact framing
//     between client and transport.
//
// # Nullable vs Absent
//
// The store distinguishes a key that is absent from a key whose value is
// explicitly null. An explicit null is carried as NULL=true; absence is
// simply a missing map entry.
package wire
