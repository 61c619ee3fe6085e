package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrTooLarge is returned by Save when the stream exceeds the caller's limit.
var ErrTooLarge = errors.New("storage: blob exceeds size limit")

// DiskStore keeps blobs under root/<category>/<name>.
type DiskStore struct {
	root string
}

// NewDiskStore creates the root and one subdirectory per category up front,
// so request handlers never touch directory state.
func NewDiskStore(root string, categories ...string) (*DiskStore, error) {
	for _, c := range categories {
		if err := os.MkdirAll(filepath.Join(root, c), 0o755); err != nil {
			return nil, fmt.Errorf("create uploads dir for %s: %w", c, err)
		}
	}
	return &DiskStore{root: root}, nil
}

// Root returns the directory blobs are stored under, for static file serving.
func (d *DiskStore) Root() string {
	return d.root
}

func (d *DiskStore) path(category, name string) string {
	// name is always server-generated, but keep Base as a hard stop against
	// traversal regardless.
	return filepath.Join(d.root, filepath.Base(category), filepath.Base(name))
}

func (d *DiskStore) Save(ctx context.Context, category, name string, r io.Reader, maxBytes int64) (int64, error) {
	dstPath := d.path(category, name)
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, err
	}

	// Read one byte past the limit so an exactly-at-limit file passes.
	n, err := io.Copy(dst, io.LimitReader(r, maxBytes+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err == nil && maxBytes > 0 && n > maxBytes {
		err = ErrTooLarge
	}
	if err != nil {
		// Partial writes must not survive a failed Save.
		_ = os.Remove(dstPath)
		return 0, err
	}
	return n, nil
}

func (d *DiskStore) Delete(ctx context.Context, category, name string) error {
	err := os.Remove(d.path(category, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (d *DiskStore) Exists(ctx context.Context, category, name string) (bool, error) {
	_, err := os.Stat(d.path(category, name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
