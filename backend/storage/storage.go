// Package storage holds the blob persistence strategies. Metadata always
// lives in the repository; only the raw bytes move between backends.
package storage

import (
	"context"
	"errors"

	"trifile/backend/model"
)

// EmbeddedLocation marks records whose payload is stored inside the metadata
// record instead of on disk.
const EmbeddedLocation = "embedded"

// ErrBlobMissing is returned when a record points at bytes that are gone.
var ErrBlobMissing = errors.New("stored blob is missing")

// BlobStore persists and retrieves raw file bytes. Exactly one implementation
// is active per process, selected at startup.
type BlobStore interface {
	// Store persists data under storedName and returns the location reference
	// to record in the file's metadata.
	Store(ctx context.Context, data []byte, storedName string) (string, error)
	// Retrieve returns the bytes for a previously stored record.
	Retrieve(ctx context.Context, rec *model.File) ([]byte, error)
	// Remove deletes a stored blob. Used only to clean up after a failed
	// metadata insert; removing a missing blob is not an error.
	Remove(ctx context.Context, locationRef string) error
	// Embeds reports whether payloads travel inside the metadata record.
	Embeds() bool
}
