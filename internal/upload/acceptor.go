package upload

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"path/filepath"
	"time"

	"portfolio-backend/internal/storage"
)

// AcceptedFile describes a blob that has been written to the store. The
// stored name is always server-generated; the original name is kept for
// display only and never used for addressing.
type AcceptedFile struct {
	Kind         Kind
	Category     string
	StoredName   string
	OriginalName string
	MimeType     string
	SizeBytes    int64
	LogicalPath  string // externally addressable path, /uploads/<category>/<storedName>
}

// Service accepts uploads against the policy table and cleans up after
// failed operations. There is no database transaction spanning the blob
// write and the record write, so compensation substitutes for one.
type Service struct {
	store storage.BlobStore
}

func NewService(store storage.BlobStore) *Service {
	return &Service{store: store}
}

// Accept reads the single file of kind's policy field from a multipart
// request. It returns (nil, nil) when the field is absent; callers decide
// whether a file is mandatory for the operation at hand. On rejection no
// bytes remain in the store.
func (s *Service) Accept(r *http.Request, kind Kind) (*AcceptedFile, error) {
	p, err := PolicyFor(kind)
	if err != nil {
		return nil, err
	}

	file, header, err := r.FormFile(p.FieldName)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Both checks run before anything is written.
	mimeType := header.Header.Get("Content-Type")
	if !p.Allows(mimeType) {
		return nil, ErrInvalidFileType
	}
	if header.Size > p.MaxSizeBytes {
		return nil, ErrFileTooLarge
	}

	storedName := fmt.Sprintf("%s-%d-%d%s",
		p.FieldName,
		time.Now().UnixMilli(),
		rand.IntN(1_000_000_000),
		filepath.Ext(filepath.Base(header.Filename)),
	)

	// The store enforces the ceiling again while streaming and removes any
	// partial write on failure.
	n, err := s.store.Save(r.Context(), p.Category, storedName, file, p.MaxSizeBytes)
	if errors.Is(err, storage.ErrTooLarge) {
		return nil, ErrFileTooLarge
	}
	if err != nil {
		return nil, err
	}

	return &AcceptedFile{
		Kind:         kind,
		Category:     p.Category,
		StoredName:   storedName,
		OriginalName: header.Filename,
		MimeType:     mimeType,
		SizeBytes:    n,
		LogicalPath:  "/uploads/" + p.Category + "/" + storedName,
	}, nil
}
