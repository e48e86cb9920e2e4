package service

import "errors"

// MaxUploadSize is the inclusive payload ceiling: 10 MiB.
const MaxUploadSize = 10 * 1024 * 1024

var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrPayloadTooLarge = errors.New("file exceeds maximum size")
)

// allowedMimeTypes is the fixed upload allow-list: PDF, Word, Excel and images.
var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"image/jpeg": true,
	"image/png":  true,
}

// ValidateUpload checks the declared MIME type against the allow-list and the
// size against MaxUploadSize. The declared type is trusted as-is; content is
// never sniffed, which is a documented limitation of the service.
func ValidateUpload(mimeType string, size int64) error {
	if !allowedMimeTypes[mimeType] {
		return ErrUnsupportedType
	}
	if size > MaxUploadSize {
		return ErrPayloadTooLarge
	}
	return nil
}
