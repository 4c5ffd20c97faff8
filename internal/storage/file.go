package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each key as a JSON file under a data directory. It is the
// default backend, the local analogue of the browser tracker's localStorage.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a FileStore.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get implements BlobStore.
func (f *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading blob %s: %w", key, err)
	}
	return data, true, nil
}

// Put implements BlobStore. The blob is written to a temp file and renamed
// into place so readers never observe a partial write.
func (f *FileStore) Put(key string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp blob: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing blob %s: %w", key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing blob %s: %w", key, err)
	}
	return nil
}

// Close implements BlobStore.
func (f *FileStore) Close() error { return nil }

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

var _ BlobStore = (*FileStore)(nil)
