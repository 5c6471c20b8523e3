package application

import (
	"context"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes application-form persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an application repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new form. The unique index on user_id keeps it to one
// form per candidate.
func (r *Repository) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// FindByUserID loads the form owned by the given user.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// Save writes the full record back after an in-memory merge.
func (r *Repository) Save(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}
