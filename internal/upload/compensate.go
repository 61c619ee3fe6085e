package upload

import (
	"context"
	"log"
)

// WithCleanup runs fn, typically the database write that makes accepted
// durable. If fn fails the blob is discarded and fn's error is returned
// unchanged. accepted may be nil (no file in the request).
func (s *Service) WithCleanup(ctx context.Context, accepted *AcceptedFile, fn func() error) error {
	err := fn()
	if err != nil && accepted != nil {
		s.Discard(ctx, accepted)
	}
	return err
}

// Discard deletes an accepted blob that never became referenced by a record.
// Best effort: a blob that is already gone is fine, anything else is logged
// and swallowed.
func (s *Service) Discard(ctx context.Context, accepted *AcceptedFile) {
	s.Remove(ctx, accepted.Category, accepted.StoredName)
}

// Remove deletes a stored blob by name, for replaced or owner-deleted assets.
// The record is the source of truth at this point, so a failed delete is
// logged, never propagated; calling it twice on the same name is harmless.
func (s *Service) Remove(ctx context.Context, category, storedName string) {
	if storedName == "" {
		return
	}
	if err := s.store.Delete(ctx, category, storedName); err != nil {
		log.Printf("Error deleting stored file %s/%s: %v", category, storedName, err)
	}
}
