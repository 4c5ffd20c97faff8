package storage

import "sync"

// MemoryStore is an in-memory BlobStore. It backs tests and the `memory`
// backend, where data lives only for the process lifetime.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Get implements BlobStore.
func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Put implements BlobStore.
func (m *MemoryStore) Put(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[key] = stored
	return nil
}

// Close implements BlobStore.
func (m *MemoryStore) Close() error { return nil }

var _ BlobStore = (*MemoryStore)(nil)
