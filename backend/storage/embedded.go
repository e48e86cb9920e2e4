package storage

import (
	"context"

	"trifile/backend/model"
)

// EmbeddedStore keeps blobs inside the metadata record itself. Persistence is
// handled entirely by the repository insert, so Store only hands back the
// marker location. Meant for deployments without a writable filesystem.
type EmbeddedStore struct{}

func NewEmbeddedStore() *EmbeddedStore { return &EmbeddedStore{} }

func (s *EmbeddedStore) Store(ctx context.Context, data []byte, storedName string) (string, error) {
	return EmbeddedLocation, nil
}

func (s *EmbeddedStore) Retrieve(ctx context.Context, rec *model.File) ([]byte, error) {
	if rec.Data == nil {
		return nil, ErrBlobMissing
	}
	return rec.Data, nil
}

func (s *EmbeddedStore) Remove(ctx context.Context, locationRef string) error { return nil }

func (s *EmbeddedStore) Embeds() bool { return true }
