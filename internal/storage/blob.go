// Package storage persists the ledger as a single JSON blob in a pluggable
// key-value store, and handles export/import snapshots.
package storage

// DefaultKey is the blob key the ledger lives under.
const DefaultKey = "finanzTrackData"

// BlobStore is a flat key-value store holding serialized blobs.
type BlobStore interface {
	// Get returns the blob for key, with ok=false when the key is absent.
	Get(key string) (data []byte, ok bool, err error)
	// Put stores the blob for key, overwriting any prior value.
	Put(key string, data []byte) error
	Close() error
}
