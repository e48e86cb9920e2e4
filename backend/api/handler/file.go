package handler

import (
	"errors"
	"io"
	"net/http"

	"trifile/backend/common"
	"trifile/backend/model"
	"trifile/backend/service"
	"trifile/backend/storage"

	"github.com/gin-gonic/gin"
)

// FileHandler exposes the ingestion and retrieval pipeline over HTTP.
type FileHandler struct {
	svc *service.FileService
}

func NewFileHandler(svc *service.FileService) *FileHandler {
	return &FileHandler{svc: svc}
}

// Upload handles POST /upload (multipart/form-data, field "file").
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.RespErrorStr(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		common.RespError(c, http.StatusBadRequest, "Malformed upload", err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, service.MaxUploadSize+1))
	if err != nil {
		common.SysError("failed to read upload body: " + err.Error())
		common.RespErrorStr(c, http.StatusInternalServerError, "Server error during file upload")
		return
	}

	rec, err := h.svc.Ingest(c.Request.Context(), service.IngestRequest{
		Data:         data,
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
	})
	if err != nil {
		h.respondIngestError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"file": gin.H{
			"id":           rec.ID.Hex(),
			"uuid":         rec.UUID,
			"originalname": rec.OriginalName,
			"url":          rec.URL,
		},
	})
}

// Get handles GET /files/:uuid. With ?data=true the raw bytes are returned
// instead of metadata, using the stored MIME type and original filename.
func (h *FileHandler) Get(c *gin.Context) {
	fileUUID := c.Param("uuid")

	if c.Query("data") == "true" {
		data, mimeType, originalName, err := h.svc.GetPayload(c.Request.Context(), fileUUID)
		if err != nil {
			h.respondLookupError(c, err)
			return
		}
		c.Header("Content-Disposition", `inline; filename="`+originalName+`"`)
		c.Data(http.StatusOK, mimeType, data)
		return
	}

	rec, err := h.svc.GetMetadata(c.Request.Context(), fileUUID)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"file": gin.H{
			"id":           rec.ID.Hex(),
			"uuid":         rec.UUID,
			"originalname": rec.OriginalName,
			"url":          rec.URL,
			"mimetype":     rec.MimeType,
			"size":         rec.Size,
			"createdAt":    common.FormatTime(rec.CreatedAt),
		},
	})
}

// List handles GET /files: all records, newest first.
func (h *FileHandler) List(c *gin.Context) {
	files, err := h.svc.ListMetadata(c.Request.Context())
	if err != nil {
		common.SysError("failed to list files: " + err.Error())
		common.RespErrorStr(c, http.StatusInternalServerError, "Server error while retrieving files")
		return
	}

	summaries := make([]gin.H, 0, len(files))
	for _, rec := range files {
		summaries = append(summaries, gin.H{
			"id":           rec.ID.Hex(),
			"uuid":         rec.UUID,
			"originalname": rec.OriginalName,
			"url":          rec.URL,
			"mimetype":     rec.MimeType,
			"createdAt":    common.FormatTime(rec.CreatedAt),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(summaries),
		"files":   summaries,
	})
}

func (h *FileHandler) respondIngestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoFile):
		common.RespErrorStr(c, http.StatusBadRequest, "No file uploaded")
	case errors.Is(err, service.ErrUnsupportedType):
		common.RespErrorStr(c, http.StatusBadRequest, "Invalid file type. Only PDF, Word, Excel, and image files are allowed.")
	case errors.Is(err, service.ErrPayloadTooLarge):
		common.RespErrorStr(c, http.StatusBadRequest, "File too large. Maximum size is 10 MB.")
	default:
		common.SysError("file upload error: " + err.Error())
		common.RespErrorStr(c, http.StatusInternalServerError, "Server error during file upload")
	}
}

func (h *FileHandler) respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		common.RespErrorStr(c, http.StatusNotFound, "File not found")
	case errors.Is(err, storage.ErrBlobMissing):
		common.SysError("blob missing for stored record: " + err.Error())
		common.RespErrorStr(c, http.StatusInternalServerError, "Server error while retrieving file")
	default:
		common.SysError("file lookup error: " + err.Error())
		common.RespErrorStr(c, http.StatusInternalServerError, "Server error while retrieving file")
	}
}
