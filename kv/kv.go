// Package kv provides the small key-value persistence layer backing the
// ledger: string keys mapped to opaque payloads, with a sqlite file store
// for the CLI and an in-memory store for tests.
package kv

// Store is a flat key-value bucket. Implementations must be safe for use
// from a single goroutine; the CLI never shares a store across
// goroutines.
type Store interface {
	// Get returns the payload for key. The second return reports whether
	// the key exists; a missing key is not an error.
	Get(key string) ([]byte, bool, error)

	// Set writes the payload for key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(key string) error

	// Reset removes every key.
	Reset() error

	Close() error
}
