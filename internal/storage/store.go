// Package storage holds blobs referenced by database records. A blob is
// addressed by a category (the per-resource upload directory) and a stored
// name that is never derived from caller input.
package storage

import (
	"context"
	"io"
)

type BlobStore interface {
	// Save writes the blob and returns the number of bytes written. At most
	// maxBytes are consumed from r; ErrTooLarge is returned and nothing is
	// left behind if the stream runs past the limit.
	Save(ctx context.Context, category, name string, r io.Reader, maxBytes int64) (int64, error)

	// Delete removes a blob. Deleting a blob that is already gone is not an
	// error.
	Delete(ctx context.Context, category, name string) error

	// Exists reports whether a blob is present.
	Exists(ctx context.Context, category, name string) (bool, error)
}
