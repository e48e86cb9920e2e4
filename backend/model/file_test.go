package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFileBSONKeepsEmptyPayload(t *testing.T) {
	f := File{
		UUID:         "4fca03e6-52b8-4b43-b9a9-2bbba431a631",
		Filename:     "4fca03e6-52b8-4b43-b9a9-2bbba431a631.pdf",
		OriginalName: "empty.pdf",
		MimeType:     "application/pdf",
		Size:         0,
		Path:         "embedded",
		Data:         []byte{},
		CreatedAt:    time.Now().UTC(),
	}

	raw, err := bson.Marshal(f)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	_, hasData := doc["data"]
	assert.True(t, hasData, "a zero-byte payload must still be stored in the record")

	var back File
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.NotNil(t, back.Data, "empty payload must decode as present, not missing")
	assert.Empty(t, back.Data)
}

func TestFileBSONRoundTripPayload(t *testing.T) {
	f := File{
		UUID: "0b9df215-7e68-44a1-9f0e-6f804f3c6b21",
		Path: "embedded",
		Data: []byte("%PDF-1.4 body"),
	}

	raw, err := bson.Marshal(f)
	require.NoError(t, err)

	var back File
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, f.Data, back.Data)
}
