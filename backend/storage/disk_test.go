package storage

import (
	"context"
	"path/filepath"
	"testing"

	"trifile/backend/model"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiskStore(t *testing.T) (*DiskStore, afero.Fs) {
	fs := afero.NewMemMapFs()
	store, err := NewDiskStore(fs, "/uploads")
	require.NoError(t, err)
	return store, fs
}

func TestDiskStoreCreatesDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := NewDiskStore(fs, "/data/uploads")
	require.NoError(t, err)
	exists, err := afero.DirExists(fs, "/data/uploads")
	require.NoError(t, err)
	assert.True(t, exists)

	// create-if-absent is idempotent
	_, err = NewDiskStore(fs, "/data/uploads")
	assert.NoError(t, err)
}

func TestDiskStoreRoundTrip(t *testing.T) {
	store, _ := newTestDiskStore(t)
	data := []byte("%PDF-1.4 test content")

	ref, err := store.Store(context.Background(), data, "a1b2c3d4.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/uploads", "a1b2c3d4.pdf"), ref)

	got, err := store.Retrieve(context.Background(), &model.File{Path: ref})
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDiskStoreMissingBlob(t *testing.T) {
	store, _ := newTestDiskStore(t)
	_, err := store.Retrieve(context.Background(), &model.File{Path: "/uploads/never-stored.pdf"})
	assert.ErrorIs(t, err, ErrBlobMissing)
}

func TestDiskStoreRemove(t *testing.T) {
	store, _ := newTestDiskStore(t)
	ref, err := store.Store(context.Background(), []byte("bytes"), "gone.png")
	require.NoError(t, err)

	require.NoError(t, store.Remove(context.Background(), ref))
	_, err = store.Retrieve(context.Background(), &model.File{Path: ref})
	assert.ErrorIs(t, err, ErrBlobMissing)

	// removing an already-missing blob is not an error
	assert.NoError(t, store.Remove(context.Background(), ref))
}

func TestDiskStoreDoesNotEmbed(t *testing.T) {
	store, _ := newTestDiskStore(t)
	assert.False(t, store.Embeds())
}
