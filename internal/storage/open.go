package storage

import "fmt"

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open constructs the BlobStore named by backend. dataDir backs the file
// store; dbPath backs the sqlite store.
func Open(backend, dataDir, dbPath string) (BlobStore, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(dataDir)
	case BackendSQLite:
		return NewSQLiteStore(dbPath)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
