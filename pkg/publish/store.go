package publish

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Store is the interface for publish destinations.
type Store interface {
	// Put stores body under key, replacing any existing object.
	Put(ctx context.Context, key, contentType string, body io.Reader) error
}

// DiskStore writes published documents below a directory. Keys are slash
// separated paths relative to the directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a DiskStore, creating dir if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, pkgerrors.Wrapf(err, "create %s", dir)
	}
	return &DiskStore{dir: dir}, nil
}

// Put writes body to dir/key. Keys that would escape the directory are
// rejected.
func (s *DiskStore) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return pkgerrors.Errorf("key %q escapes %s", key, s.dir)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return pkgerrors.Wrap(err, "create parent directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrap(err, "create file")
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return pkgerrors.Wrap(err, "write file")
	}
	return pkgerrors.Wrap(f.Close(), "close file")
}
