package attachments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/enums"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/storage/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlobStore is the object storage surface the service needs.
type BlobStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Download(ctx context.Context, key string) (*s3.Object, error)
}

type metadataRepo interface {
	Create(ctx context.Context, attachment *models.Attachment) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Attachment, error)
}

// Service streams attachment bytes through the object store and keeps the
// metadata rows the download endpoints are driven by.
type Service struct {
	repo  metadataRepo
	blobs BlobStore
}

// NewService wires the attachment service.
func NewService(repo metadataRepo, blobs BlobStore) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("attachment repository is required")
	}
	if blobs == nil {
		return nil, fmt.Errorf("blob store is required")
	}
	return &Service{repo: repo, blobs: blobs}, nil
}

// SaveInput describes one uploaded file.
type SaveInput struct {
	OwnerUserID uuid.UUID
	Kind        enums.AttachmentKind
	FileName    string
	ContentType string
	SizeBytes   int64
	Body        io.Reader
}

// Save streams the upload into the object store and records its metadata.
// The storage key is the attachment id joined with the sanitized original
// filename so keys stay unique and debuggable.
func (s *Service) Save(ctx context.Context, in SaveInput) (*models.Attachment, error) {
	if in.Body == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file content is required")
	}
	if in.SizeBytes <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file is empty")
	}

	id := uuid.New()
	key := fmt.Sprintf("%s-%s", id, sanitizeFileName(in.FileName))

	if err := s.blobs.Upload(ctx, key, in.ContentType, in.Body, in.SizeBytes); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing attachment")
	}

	attachment := &models.Attachment{
		ID:          id,
		OwnerUserID: in.OwnerUserID,
		Kind:        in.Kind,
		StorageKey:  key,
		FileName:    in.FileName,
		ContentType: in.ContentType,
		SizeBytes:   in.SizeBytes,
	}
	if err := s.repo.Create(ctx, attachment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recording attachment")
	}
	return attachment, nil
}

// Stream opens the attachment for reading. Missing metadata and missing
// bytes both surface as not found.
func (s *Service) Stream(ctx context.Context, fileID uuid.UUID) (*models.Attachment, io.ReadCloser, error) {
	attachment, err := s.repo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, "file not found")
		}
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading attachment")
	}

	obj, err := s.blobs.Download(ctx, attachment.StorageKey)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "file not found")
	}
	return attachment, obj.Body, nil
}

func sanitizeFileName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "upload"
	}
	return strings.ReplaceAll(base, " ", "_")
}
