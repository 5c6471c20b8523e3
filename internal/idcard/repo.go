package idcard

import (
	"context"
	"errors"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository exposes ID card persistence. One card per user is enforced by a
// unique index on user_id, which the upserts key on.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an id card repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUserID loads the user's card.
func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.IDCard, error) {
	var card models.IDCard
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// Upsert writes the card's printable fields, inserting when the user has no
// card yet. File references are left untouched on update.
func (r *Repository) Upsert(ctx context.Context, card *models.IDCard) (*models.IDCard, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "blood_group", "residence_address", "emergency_contact_no", "updated_at",
		}),
	}).Create(card).Error
	if err != nil {
		return nil, err
	}
	return r.FindByUserID(ctx, card.UserID)
}

// SetSignatureFileID points the card's signature at a new attachment,
// creating a minimal card row when none exists.
func (r *Repository) SetSignatureFileID(ctx context.Context, userID uuid.UUID, fileID uuid.UUID) (*models.IDCard, error) {
	card, err := r.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		card = &models.IDCard{UserID: userID, SignatureFileID: &fileID}
		if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
			return nil, err
		}
		return card, nil
	}

	if err := r.db.WithContext(ctx).
		Model(&models.IDCard{}).
		Where("user_id = ?", userID).
		UpdateColumn("signature_file_id", fileID).Error; err != nil {
		return nil, err
	}
	card.SignatureFileID = &fileID
	return card, nil
}
