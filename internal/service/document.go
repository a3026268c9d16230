package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freightdev/openhwy-sub001/internal/apperror"
	"github.com/freightdev/openhwy-sub001/internal/auth"
	"github.com/freightdev/openhwy-sub001/internal/model"
	"github.com/freightdev/openhwy-sub001/internal/repository"
	"github.com/freightdev/openhwy-sub001/internal/storage"
)

var (
	ErrIDRequired       = apperror.Validation("id is required")
	ErrReaderNil        = apperror.Validation("file is required")
	ErrDriverNotFound   = apperror.NotFound("Driver not found")
	ErrDocumentNotFound = apperror.NotFound("Document not found")
)

// DefaultPresignExpiry is used when the service is built with a non-positive expiry.
const DefaultPresignExpiry = 15 * time.Minute

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.DriverDocument
	Total int
}

// UploadInput describes one document upload. Filename is the client's name
// for the file; only its extension reaches the storage key.
type UploadInput struct {
	DriverID    string
	Type        string
	Filename    string
	ContentType string
	Size        int64
	ExpiryDate  *time.Time
	Body        io.Reader
}

// DocumentService defines the use cases for driver documents. The driver is
// looked up in the caller's tenant before any document is touched.
type DocumentService interface {
	// Upload stores the content, saves metadata, and removes the object again
	// if the metadata cannot be saved.
	Upload(ctx context.Context, tenant auth.Tenant, in UploadInput) (*model.DriverDocument, error)

	List(ctx context.Context, tenant auth.Tenant, driverID string, q repository.ListQuery) (*DocumentListResult, error)

	// Get returns the document with a presigned DownloadURL.
	Get(ctx context.Context, tenant auth.Tenant, driverID, id string) (*model.DriverDocument, error)

	// Open streams the stored content. The caller closes the reader.
	Open(ctx context.Context, tenant auth.Tenant, driverID, id string) (*model.DriverDocument, io.ReadCloser, error)

	// Delete removes the object from storage, then its record.
	Delete(ctx context.Context, tenant auth.Tenant, driverID, id string) error
}

type documentService struct {
	store   storage.Storage
	drivers repository.DriverRepository
	repo    repository.DocumentRepository
	expiry  time.Duration
	now     func() time.Time
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, drivers repository.DriverRepository, repo repository.DocumentRepository, presignExpiry time.Duration) DocumentService {
	if presignExpiry <= 0 {
		presignExpiry = DefaultPresignExpiry
	}
	return &documentService{store: store, drivers: drivers, repo: repo, expiry: presignExpiry, now: time.Now}
}

// StorageKey builds the object key for a new document of driverID.
func StorageKey(driverID, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return path.Join("drivers", driverID, uuid.New().String()+ext)
}

func (s *documentService) Upload(ctx context.Context, tenant auth.Tenant, in UploadInput) (*model.DriverDocument, error) {
	if in.Body == nil {
		return nil, ErrReaderNil
	}
	if in.DriverID == "" {
		return nil, ErrIDRequired
	}
	if err := s.ownDriver(ctx, tenant, in.DriverID); err != nil {
		return nil, err
	}

	filename := filepath.Base(in.Filename)
	key := StorageKey(in.DriverID, filename)

	objInfo, err := s.store.Put(ctx, key, in.Body, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": filename,
			"driver-id":         in.DriverID,
			"document-type":     in.Type,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.DriverDocument{
		ID:          uuid.New().String(),
		DriverID:    in.DriverID,
		Type:        in.Type,
		Filename:    filename,
		StoragePath: objInfo.Key,
		ContentType: objInfo.ContentType,
		Size:        objInfo.Size,
		ExpiryDate:  in.ExpiryDate,
		UploadedAt:  s.now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Roll back the object even if the request context is done.
		if delErr := s.store.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		if errors.Is(err, apperror.ErrRecordMissing) {
			return nil, ErrDriverNotFound.WithCause(err)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) List(ctx context.Context, tenant auth.Tenant, driverID string, q repository.ListQuery) (*DocumentListResult, error) {
	if driverID == "" {
		return nil, ErrIDRequired
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if err := s.ownDriver(ctx, tenant, driverID); err != nil {
		return nil, err
	}
	res, err := s.repo.List(ctx, driverID, q)
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) Get(ctx context.Context, tenant auth.Tenant, driverID, id string) (*model.DriverDocument, error) {
	doc, err := s.find(ctx, tenant, driverID, id)
	if err != nil {
		return nil, err
	}
	u, err := s.store.PresignGet(ctx, doc.StoragePath, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("presign download: %w", err)
	}
	doc.DownloadURL = u
	return doc, nil
}

func (s *documentService) Open(ctx context.Context, tenant auth.Tenant, driverID, id string) (*model.DriverDocument, io.ReadCloser, error) {
	doc, err := s.find(ctx, tenant, driverID, id)
	if err != nil {
		return nil, nil, err
	}
	body, info, err := s.store.Get(ctx, doc.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectMissing) {
			return nil, nil, ErrDocumentNotFound.WithCause(err)
		}
		return nil, nil, fmt.Errorf("read storage: %w", err)
	}
	if info.Size > 0 {
		doc.Size = info.Size
	}
	return doc, body, nil
}

func (s *documentService) Delete(ctx context.Context, tenant auth.Tenant, driverID, id string) error {
	doc, err := s.find(ctx, tenant, driverID, id)
	if err != nil {
		return err
	}
	// Delete from storage first; if this fails the row still points at the object.
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	if err := s.repo.Delete(ctx, driverID, id); err != nil {
		if errors.Is(err, apperror.ErrRecordMissing) {
			return ErrDocumentNotFound.WithCause(err)
		}
		return err
	}
	return nil
}

func (s *documentService) find(ctx context.Context, tenant auth.Tenant, driverID, id string) (*model.DriverDocument, error) {
	if driverID == "" || id == "" {
		return nil, ErrIDRequired
	}
	if err := s.ownDriver(ctx, tenant, driverID); err != nil {
		return nil, err
	}
	doc, err := s.repo.FindByID(ctx, driverID, id)
	if err != nil {
		if errors.Is(err, apperror.ErrRecordMissing) {
			return nil, ErrDocumentNotFound.WithCause(err)
		}
		return nil, err
	}
	return doc, nil
}

// ownDriver checks that driverID exists in the caller's company. Drivers of
// other tenants are reported as missing.
func (s *documentService) ownDriver(ctx context.Context, tenant auth.Tenant, driverID string) error {
	if _, err := s.drivers.FindByID(ctx, tenant.CompanyID, driverID); err != nil {
		return driverError(err)
	}
	return nil
}
