// Package store keeps named incremental set digests in a key/value database.
package store

import "github.com/pkg/errors"

// ErrNotFound is returned by a Backend when a key is absent.
var ErrNotFound = errors.New("not found")

// Backend is the interface Sets uses to communicate with its database.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key []byte) error
	Close() error
}
