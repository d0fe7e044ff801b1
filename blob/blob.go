// Package blob provides the key-addressed storage behind the /files/ route. Keys
// are opaque: the stores never interpret nor sanitize them.
package blob

import "errors"

var ErrNotFound = errors.New("blob not found")

// Store reads and writes whole blobs. Implementations must be safe for concurrent use,
// but give no ordering guarantees: of concurrent writes to the same key the last
// one wins.
type Store interface {
	// Read returns the blob stored at the key. If there's none, an error wrapping
	// ErrNotFound is returned.
	Read(key string) ([]byte, error)
	// Write replaces the blob stored at the key, creating it if necessary.
	Write(key string, data []byte) error
}
