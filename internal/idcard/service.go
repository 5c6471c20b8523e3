package idcard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Priyanshpaila/Recruitment-backend/internal/attachments"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/enums"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var emergencyContactPattern = regexp.MustCompile(`^[0-9]{7,15}$`)

// Service defines the behavior needed by the id card controller.
type Service interface {
	Upsert(ctx context.Context, userID uuid.UUID, req UpsertRequest) (*CardResponse, error)
	Get(ctx context.Context, userID uuid.UUID) (*CardResponse, error)
	UploadSignature(ctx context.Context, userID uuid.UUID, upload Upload) (*SignatureResponse, error)
	StreamSignature(ctx context.Context, fileID uuid.UUID) (*models.Attachment, io.ReadCloser, error)
}

// Upload carries one multipart file into the service layer.
type Upload struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Body        io.Reader
}

type cardRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.IDCard, error)
	Upsert(ctx context.Context, card *models.IDCard) (*models.IDCard, error)
	SetSignatureFileID(ctx context.Context, userID uuid.UUID, fileID uuid.UUID) (*models.IDCard, error)
}

type userLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type attachmentService interface {
	Save(ctx context.Context, in attachments.SaveInput) (*models.Attachment, error)
	Stream(ctx context.Context, fileID uuid.UUID) (*models.Attachment, io.ReadCloser, error)
}

type service struct {
	cards       cardRepository
	users       userLoader
	attachments attachmentService
}

// ServiceParams bundles the dependencies required to build an id card service.
type ServiceParams struct {
	Cards       cardRepository
	Users       userLoader
	Attachments attachmentService
}

// NewService constructs an id card service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Cards == nil {
		return nil, fmt.Errorf("card repository is required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("user loader is required")
	}
	if params.Attachments == nil {
		return nil, fmt.Errorf("attachment service is required")
	}
	return &service{
		cards:       params.Cards,
		users:       params.Users,
		attachments: params.Attachments,
	}, nil
}

func (s *service) Upsert(ctx context.Context, userID uuid.UUID, req UpsertRequest) (*CardResponse, error) {
	bloodGroup, err := enums.ParseBloodGroup(req.BloodGroup)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid blood group").
			WithDetails(map[string]string{"bloodGroup": req.BloodGroup})
	}
	contact := strings.TrimSpace(req.EmergencyContactNo)
	if !emergencyContactPattern.MatchString(contact) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "emergency contact number must be 7-15 digits")
	}

	card := &models.IDCard{
		UserID:             userID,
		Name:               strings.ToUpper(strings.TrimSpace(req.Name)),
		BloodGroup:         bloodGroup,
		ResidenceAddress:   strings.TrimSpace(req.ResidenceAddress),
		EmergencyContactNo: contact,
	}
	saved, err := s.cards.Upsert(ctx, card)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving id card")
	}

	// An optional pre-uploaded signature id may be attached in the same call.
	// Any photoFileId in the body is discarded.
	if req.SignatureFileID != nil {
		sigID, parseErr := uuid.Parse(*req.SignatureFileID)
		if parseErr != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid signature file id")
		}
		saved, err = s.cards.SetSignatureFileID(ctx, userID, sigID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "linking signature")
		}
	}

	return s.respond(ctx, userID, saved)
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*CardResponse, error) {
	card, err := s.cards.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "id card not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading id card")
	}
	return s.respond(ctx, userID, card)
}

func (s *service) UploadSignature(ctx context.Context, userID uuid.UUID, upload Upload) (*SignatureResponse, error) {
	attachment, err := s.attachments.Save(ctx, attachments.SaveInput{
		OwnerUserID: userID,
		Kind:        enums.AttachmentKindSignature,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		SizeBytes:   upload.SizeBytes,
		Body:        upload.Body,
	})
	if err != nil {
		return nil, err
	}

	card, err := s.cards.SetSignatureFileID(ctx, userID, attachment.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "linking signature")
	}
	return &SignatureResponse{FileID: attachment.ID, Card: cardFromModel(card)}, nil
}

func (s *service) StreamSignature(ctx context.Context, fileID uuid.UUID) (*models.Attachment, io.ReadCloser, error) {
	return s.attachments.Stream(ctx, fileID)
}

// respond resolves the photo id from the user profile, which stays the single
// source of truth for photos.
func (s *service) respond(ctx context.Context, userID uuid.UUID, card *models.IDCard) (*CardResponse, error) {
	var resolved *uuid.UUID
	if user, err := s.users.FindByID(ctx, userID); err == nil && user != nil {
		resolved = user.PhotoFileID
	}
	return &CardResponse{Card: cardFromModel(card), ResolvedPhotoFileID: resolved}, nil
}
