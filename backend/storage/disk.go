package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"trifile/backend/model"

	"github.com/spf13/afero"
)

// DiskStore writes blobs into a single upload directory. Stored names are
// uuid-derived and unique per request, so concurrent writes never contend on
// the same path.
type DiskStore struct {
	fs  afero.Fs
	dir string
}

// NewDiskStore creates the upload directory if it does not exist yet.
func NewDiskStore(fs afero.Fs, dir string) (*DiskStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", dir, err)
	}
	return &DiskStore{fs: fs, dir: dir}, nil
}

func (s *DiskStore) Store(ctx context.Context, data []byte, storedName string) (string, error) {
	path := filepath.Join(s.dir, storedName)
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("write blob %s: %w", path, err)
	}
	return path, nil
}

func (s *DiskStore) Retrieve(ctx context.Context, rec *model.File) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, rec.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBlobMissing, rec.Path)
		}
		return nil, fmt.Errorf("read blob %s: %w", rec.Path, err)
	}
	return data, nil
}

func (s *DiskStore) Remove(ctx context.Context, locationRef string) error {
	err := s.fs.Remove(locationRef)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob %s: %w", locationRef, err)
	}
	return nil
}

func (s *DiskStore) Embeds() bool { return false }
