package users

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Priyanshpaila/Recruitment-backend/internal/attachments"
	"github.com/Priyanshpaila/Recruitment-backend/internal/notify"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/enums"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/mail"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/phone"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service defines the behavior needed by the users controller.
type Service interface {
	Me(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	CreateByAdmin(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error)
	List(ctx context.Context) ([]UserSummary, error)
	UploadPhoto(ctx context.Context, userID uuid.UUID, upload Upload) (*UserDTO, error)
	StreamPhoto(ctx context.Context, fileID uuid.UUID) (*models.Attachment, io.ReadCloser, error)
}

// Upload carries one multipart file into the service layer.
type Upload struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Body        io.Reader
}

type userRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error)
	ListNonAdmins(ctx context.Context) ([]models.User, error)
	UpdatePhotoFileID(ctx context.Context, id uuid.UUID, fileID uuid.UUID) error
}

type attachmentService interface {
	Save(ctx context.Context, in attachments.SaveInput) (*models.Attachment, error)
	Stream(ctx context.Context, fileID uuid.UUID) (*models.Attachment, io.ReadCloser, error)
}

type welcomeNotifier interface {
	EnqueueWelcome(to string, data mail.WelcomeData)
}

type service struct {
	repo        userRepository
	attachments attachmentService
	notifier    welcomeNotifier
	hash        func(secret string) (string, error)
}

// ServiceParams bundles the dependencies required to build a users service.
type ServiceParams struct {
	Repo        userRepository
	Attachments attachmentService
	Notifier    *notify.Notifier
	Hash        func(secret string) (string, error)
}

// NewService constructs a users service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.Attachments == nil {
		return nil, fmt.Errorf("attachment service is required")
	}
	if params.Hash == nil {
		return nil, fmt.Errorf("hash function is required")
	}
	svc := &service{
		repo:        params.Repo,
		attachments: params.Attachments,
		hash:        params.Hash,
	}
	if params.Notifier != nil {
		svc.notifier = params.Notifier
	}
	return svc, nil
}

func (s *service) Me(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}
	dto := FromModel(user)
	return &dto, nil
}

func (s *service) CreateByAdmin(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	e164, err := phone.Normalize(req.Phone)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	post := strings.TrimSpace(req.PostAppliedFor)

	exists, err := s.repo.ExistsByPhoneOrEmail(ctx, e164, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking existing user")
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "phone or email already registered")
	}

	initialPassword := security.InitialPassword(name, e164)
	hash, err := s.hash(initialPassword)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	user := &models.User{
		Phone:          e164,
		Email:          email,
		Name:           name,
		PasswordHash:   hash,
		Role:           enums.UserRoleUser,
		PostAppliedFor: &post,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating user")
	}

	if s.notifier != nil {
		s.notifier.EnqueueWelcome(email, mail.WelcomeData{
			Name:           name,
			Phone:          e164,
			Email:          email,
			Password:       initialPassword,
			PostAppliedFor: post,
		})
	}

	return &CreateUserResponse{
		User:            FromModel(user),
		InitialPassword: initialPassword,
	}, nil
}

func (s *service) List(ctx context.Context) ([]UserSummary, error) {
	users, err := s.repo.ListNonAdmins(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing users")
	}
	if len(users) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no users found")
	}
	summaries := make([]UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, summaryFromModel(user))
	}
	return summaries, nil
}

func (s *service) UploadPhoto(ctx context.Context, userID uuid.UUID, upload Upload) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}

	attachment, err := s.attachments.Save(ctx, attachments.SaveInput{
		OwnerUserID: user.ID,
		Kind:        enums.AttachmentKindPhoto,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		SizeBytes:   upload.SizeBytes,
		Body:        upload.Body,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePhotoFileID(ctx, user.ID, attachment.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "linking photo")
	}

	user.PhotoFileID = &attachment.ID
	dto := FromModel(user)
	return &dto, nil
}

func (s *service) StreamPhoto(ctx context.Context, fileID uuid.UUID) (*models.Attachment, io.ReadCloser, error) {
	return s.attachments.Stream(ctx, fileID)
}
