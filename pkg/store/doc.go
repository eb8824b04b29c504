// Package store defines the boundary to the remote Lattice
// key/attribute store: the Item type, the Client interface the
// transport implements, and item-level marshal helpers.
//
// The codec itself lives in pkg/serde; this package only assumes a
// top-level map shape for whole items. Network transports implement
// Client elsewhere; the in-memory client here exists for tests and
// local development.
package store
