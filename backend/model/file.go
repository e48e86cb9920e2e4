package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// File is the metadata record for one uploaded document. Records are
// immutable after creation; there is no update or delete path.
type File struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// UUID is the only client-facing lookup key.
	UUID string `bson:"uuid" json:"uuid"`
	// Filename is the derived storage name: uuid + original extension.
	Filename     string `bson:"filename" json:"filename"`
	OriginalName string `bson:"originalname" json:"originalname"`
	MimeType     string `bson:"mimetype" json:"mimetype"`
	Size         int64  `bson:"size" json:"size"`
	// Path is the blob location: a filesystem path, or the embedded marker
	// when the payload lives in Data.
	Path string `bson:"path" json:"path"`
	URL  string `bson:"url" json:"url"`
	// Data holds the payload only under the embedded storage backend. The
	// field is marshalled even when empty: a zero-byte upload is a valid
	// payload and must survive the round trip through the repository.
	Data      []byte    `bson:"data" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
