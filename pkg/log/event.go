package log

import (
	"time"
)

// Event represents one store operation performed by a client.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation completed (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ClientID uniquely identifies the client (UUID).
	ClientID string `cbor:"2,keyasint"`

	// Op is the operation performed.
	Op Op `cbor:"3,keyasint"`

	// Key is the item key the operation targeted.
	Key string `cbor:"4,keyasint"`

	// Found reports whether a get found an item.
	Found bool `cbor:"5,keyasint,omitempty"`

	// Attributes is the number of attributes that crossed the boundary.
	Attributes int `cbor:"6,keyasint,omitempty"`

	// Elapsed is how long the operation took. Stored as nanoseconds.
	Elapsed time.Duration `cbor:"7,keyasint,omitempty"`

	// Error is the operation's error message, empty on success.
	Error string `cbor:"8,keyasint,omitempty"`
}

// Op identifies a store operation.
type Op uint8

const (
	// OpGet is an item fetch.
	OpGet Op = 0
	// OpPut is an item store or replace.
	OpPut Op = 1
	// OpDelete is an item removal.
	OpDelete Op = 2
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpGet:
		return "GET"
	case OpPut:
		return "PUT"
	case OpDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}
