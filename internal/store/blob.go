// Package store owns durable persistence of the ticket collection. The
// persisted state is one named JSON blob under one fixed key; BlobStore
// abstracts where that blob lives.
package store

import (
	"context"
	"sync"
)

// BlobStore reads and replaces a single opaque blob.
type BlobStore interface {
	// Read returns the blob contents and whether a blob exists.
	Read(ctx context.Context) ([]byte, bool, error)
	// Write replaces the blob contents.
	Write(ctx context.Context, data []byte) error
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}

// MemoryBlob keeps the blob in process memory.
type MemoryBlob struct {
	mu   sync.RWMutex
	data []byte
	set  bool
}

// NewMemoryBlob returns an empty in-memory blob store.
func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{}
}

// Read implements BlobStore.
func (m *MemoryBlob) Read(ctx context.Context) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return nil, false, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, true, nil
}

// Write implements BlobStore.
func (m *MemoryBlob) Write(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.set = true
	return nil
}

// Ping implements BlobStore.
func (m *MemoryBlob) Ping(ctx context.Context) error {
	return nil
}

// Close implements BlobStore.
func (m *MemoryBlob) Close() error {
	return nil
}
