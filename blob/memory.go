package blob

import (
	"fmt"
	"slices"

	"github.com/patrickmn/go-cache"
)

// Memory is a Store keeping blobs in the process memory. Blobs never expire and are
// lost on restart.
type Memory struct {
	c *cache.Cache
}

var _ Store = new(Memory)

func NewMemory() *Memory {
	return &Memory{
		// no expiration means nothing to clean up, so no janitor goroutine is needed
		c: cache.New(cache.NoExpiration, 0),
	}
}

func (m *Memory) Read(key string) ([]byte, error) {
	data, found := m.c.Get(key)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return data.([]byte), nil
}

// Write stores a copy of the data, so the caller is free to reuse the slice.
func (m *Memory) Write(key string, data []byte) error {
	m.c.Set(key, slices.Clone(data), cache.NoExpiration)
	return nil
}

// Len returns the number of stored blobs.
func (m *Memory) Len() int {
	return m.c.ItemCount()
}
