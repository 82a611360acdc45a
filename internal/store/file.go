package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBlob persists the blob as a file on disk. Writes go through a
// temporary file plus rename so readers never observe a partial write.
type FileBlob struct {
	path string
}

// NewFileBlob returns a file-backed blob store at path.
func NewFileBlob(path string) *FileBlob {
	return &FileBlob{path: path}
}

// Read implements BlobStore.
func (f *FileBlob) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", f.path, err)
	}
	return data, true, nil
}

// Write implements BlobStore.
func (f *FileBlob) Write(ctx context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// Ping implements BlobStore.
func (f *FileBlob) Ping(ctx context.Context) error {
	_, err := os.Stat(filepath.Dir(f.path))
	return err
}

// Close implements BlobStore.
func (f *FileBlob) Close() error {
	return nil
}
