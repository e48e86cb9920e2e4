package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func resetConfig() {
	*Port = 3000
	MongoURI = "mongodb://localhost:27017"
	MongoDBName = "trifile"
	BaseURL = ""
	UploadPath = "./uploads"
	StorageBackend = StorageBackendDisk
	CORSAllowOrigins = []string{"*"}
}

func TestLoadConfigDefaults(t *testing.T) {
	resetConfig()
	LoadConfig()

	assert.Equal(t, 3000, *Port)
	assert.Equal(t, "mongodb://localhost:27017", MongoURI)
	assert.Equal(t, "trifile", MongoDBName)
	assert.Equal(t, "http://localhost:3000", BaseURL)
	assert.Equal(t, "./uploads", UploadPath)
	assert.Equal(t, StorageBackendDisk, StorageBackend)
	assert.Equal(t, []string{"*"}, CORSAllowOrigins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	resetConfig()
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGODB_DB", "uploads")
	t.Setenv("BASE_URL", "https://files.example.com/")
	t.Setenv("FILE_UPLOAD_PATH", "/srv/uploads")
	t.Setenv("STORAGE_BACKEND", "EMBEDDED")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com")
	LoadConfig()

	assert.Equal(t, 8080, *Port)
	assert.Equal(t, "mongodb://db.internal:27017", MongoURI)
	assert.Equal(t, "uploads", MongoDBName)
	assert.Equal(t, "https://files.example.com", BaseURL, "trailing slash is trimmed")
	assert.Equal(t, "/srv/uploads", UploadPath)
	assert.Equal(t, StorageBackendEmbedded, StorageBackend)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, CORSAllowOrigins)
}

func TestLoadConfigInvalidPortKeepsDefault(t *testing.T) {
	resetConfig()
	t.Setenv("PORT", "not-a-port")
	LoadConfig()
	assert.Equal(t, 3000, *Port)
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, 3, 14, 15, 9, 26, 535_000_000, time.UTC)
	assert.Equal(t, "2026-03-14T15:09:26.535Z", FormatTime(ts))
}
