package service

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"trifile/backend/common"
	"trifile/backend/model"
	"trifile/backend/storage"

	"github.com/google/uuid"
)

// FileRepository is the slice of the metadata repository the service needs.
type FileRepository interface {
	Insert(ctx context.Context, f *model.File) error
	FindByUUID(ctx context.Context, fileUUID string, includePayload bool) (*model.File, error)
	ListAll(ctx context.Context) ([]*model.File, error)
}

// IngestRequest carries one upload through the pipeline.
type IngestRequest struct {
	Data         []byte
	OriginalName string
	MimeType     string
	Size         int64
}

// FileService runs the ingestion pipeline and serves retrievals. It owns no
// mutable state beyond the injected repository and blob store, so concurrent
// requests need no coordination here.
type FileService struct {
	repo    FileRepository
	store   storage.BlobStore
	baseURL string
}

func NewFileService(repo FileRepository, store storage.BlobStore, baseURL string) *FileService {
	return &FileService{repo: repo, store: store, baseURL: baseURL}
}

// Ingest validates, persists and records one upload, returning the committed
// record. A uuid collision on insert is retried once with a fresh identifier;
// a second collision indicates a deeper defect and is surfaced as-is.
func (s *FileService) Ingest(ctx context.Context, req IngestRequest) (*model.File, error) {
	if req.OriginalName == "" && len(req.Data) == 0 {
		return nil, ErrNoFile
	}
	if err := ValidateUpload(req.MimeType, req.Size); err != nil {
		return nil, err
	}

	rec, err := s.persist(ctx, req)
	if errors.Is(err, model.ErrDuplicateUUID) {
		common.SysError("uuid collision on insert, retrying once: " + err.Error())
		rec, err = s.persist(ctx, req)
	}
	return rec, err
}

// persist runs steps 3-7 of the pipeline: identifier, stored name, blob write,
// public URL, metadata insert. Re-executed wholesale on a duplicate-key retry
// so the retry gets a fresh identifier and blob location.
func (s *FileService) persist(ctx context.Context, req IngestRequest) (*model.File, error) {
	fileUUID := uuid.New().String()
	storedName := fileUUID + filepath.Ext(req.OriginalName)

	locationRef, err := s.store.Store(ctx, req.Data, storedName)
	if err != nil {
		return nil, err
	}

	rec := &model.File{
		UUID:         fileUUID,
		Filename:     storedName,
		OriginalName: req.OriginalName,
		MimeType:     req.MimeType,
		Size:         req.Size,
		Path:         locationRef,
		URL:          s.baseURL + "/files/" + fileUUID,
		CreatedAt:    time.Now().UTC(),
	}
	if s.store.Embeds() {
		rec.Data = req.Data
		// a zero-byte payload still counts as present
		if rec.Data == nil {
			rec.Data = []byte{}
		}
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		if rmErr := s.store.Remove(ctx, locationRef); rmErr != nil {
			// The blob is unreachable without its uuid; log it for a future GC.
			common.SysError("orphaned blob left behind at " + locationRef + ": " + rmErr.Error())
		}
		return nil, err
	}
	return rec, nil
}

// GetMetadata returns the record for a uuid without its payload.
func (s *FileService) GetMetadata(ctx context.Context, fileUUID string) (*model.File, error) {
	return s.repo.FindByUUID(ctx, fileUUID, false)
}

// GetPayload returns the raw bytes plus the headers a download response needs.
func (s *FileService) GetPayload(ctx context.Context, fileUUID string) ([]byte, string, string, error) {
	rec, err := s.repo.FindByUUID(ctx, fileUUID, s.store.Embeds())
	if err != nil {
		return nil, "", "", err
	}
	data, err := s.store.Retrieve(ctx, rec)
	if err != nil {
		return nil, "", "", err
	}
	return data, rec.MimeType, rec.OriginalName, nil
}

// ListMetadata returns all records newest first, payloads excluded.
func (s *FileService) ListMetadata(ctx context.Context) ([]*model.File, error) {
	return s.repo.ListAll(ctx)
}
