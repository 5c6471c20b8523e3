package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/db"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service defines the behavior needed by the application-form controller.
// Get serves both the admin view and the data export, which return the
// same payload.
type Service interface {
	Submit(ctx context.Context, userID uuid.UUID, doc FormDocument) (*FormResponse, error)
	Get(ctx context.Context, userID uuid.UUID) (*FormResponse, error)
	Update(ctx context.Context, userID uuid.UUID, doc FormDocument) (*FormResponse, error)
}

type formRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Application, error)
	Save(ctx context.Context, app *models.Application) error
}

type service struct {
	repo formRepository
}

// ServiceParams bundles the dependencies required to build a form service.
type ServiceParams struct {
	Repo formRepository
}

// NewService constructs an application-form service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("application repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) Submit(ctx context.Context, userID uuid.UUID, doc FormDocument) (*FormResponse, error) {
	if doc.PostAppliedFor == nil || strings.TrimSpace(*doc.PostAppliedFor) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "postAppliedFor is required")
	}

	app := &models.Application{UserID: userID}
	doc.apply(app)
	if err := s.repo.Create(ctx, app); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "application already submitted")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving application")
	}
	return responseFromModel(app), nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*FormResponse, error) {
	app, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	return responseFromModel(app), nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, doc FormDocument) (*FormResponse, error) {
	app, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doc.PostAppliedFor != nil && strings.TrimSpace(*doc.PostAppliedFor) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "postAppliedFor cannot be blank")
	}
	doc.apply(app)
	if err := s.repo.Save(ctx, app); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating application")
	}
	return responseFromModel(app), nil
}

func (s *service) find(ctx context.Context, userID uuid.UUID) (*models.Application, error) {
	app, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "application not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading application")
	}
	return app, nil
}
