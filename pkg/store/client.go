package store

import (
	"context"
	"errors"

	"github.com/lattice-store/lattice-go/pkg/serde"
	"github.com/lattice-store/lattice-go/pkg/wire"
)

// Item is a whole store item: the attribute names and values stored
// under one key.
type Item = map[string]wire.Value

// ErrNotFound is returned by GetItem when no item exists for the key.
var ErrNotFound = errors.New("store: item not found")

// ErrNotAnItem is returned when a value marshaled for item storage is
// not a wire map at the top level.
var ErrNotAnItem = errors.New("store: top-level value must be a map")

// Client is the transport boundary to the store. Implementations own
// all network concerns: timeouts, retries, and cancellation are theirs,
// never the codec's. Items cross the boundary by ownership transfer;
// implementations must not alias an Item after returning it.
type Client interface {
	// GetItem fetches the item stored under key, or ErrNotFound.
	GetItem(ctx context.Context, key string) (Item, error)

	// PutItem stores item under key, replacing any previous item.
	PutItem(ctx context.Context, key string, item Item) error

	// DeleteItem removes the item stored under key. Deleting a missing
	// key is not an error.
	DeleteItem(ctx context.Context, key string) error
}

// MarshalItem serializes a value whose top-level shape is a record or
// string-keyed map into an Item.
func MarshalItem(v serde.Marshaler) (Item, error) {
	val, err := serde.Marshal(v)
	if err != nil {
		return nil, err
	}
	if val.M == nil {
		return nil, ErrNotAnItem
	}
	return val.M, nil
}

// UnmarshalItem reconstructs a value from a whole item.
func UnmarshalItem(item Item, v serde.Unmarshaler) error {
	return serde.Unmarshal(wire.Map(item), v)
}
