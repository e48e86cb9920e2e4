package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUploadAllowedTypes(t *testing.T) {
	allowed := []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"image/jpeg",
		"image/png",
	}
	for _, mimeType := range allowed {
		assert.NoError(t, ValidateUpload(mimeType, 1024), mimeType)
	}
}

func TestValidateUploadRejectsUnknownTypes(t *testing.T) {
	rejected := []string{
		"text/plain",
		"application/zip",
		"application/octet-stream",
		"image/gif",
		"text/html",
		"",
	}
	for _, mimeType := range rejected {
		assert.ErrorIs(t, ValidateUpload(mimeType, 1024), ErrUnsupportedType, mimeType)
	}
}

func TestValidateUploadSizeCeiling(t *testing.T) {
	// exactly at the limit passes, one byte over fails
	assert.NoError(t, ValidateUpload("application/pdf", MaxUploadSize))
	assert.ErrorIs(t, ValidateUpload("application/pdf", MaxUploadSize+1), ErrPayloadTooLarge)
}

func TestValidateUploadTypeCheckedBeforeSize(t *testing.T) {
	assert.ErrorIs(t, ValidateUpload("text/plain", MaxUploadSize+1), ErrUnsupportedType)
}
