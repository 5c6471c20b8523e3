package models

import (
	"time"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDCard holds the personal details printed on an employee ID card. One card
// per user; the photo reference on the card is ignored on write because the
// user profile is authoritative for photos.
type IDCard struct {
	ID                 uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	UserID             uuid.UUID        `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	Name               string           `gorm:"column:name;not null"`
	BloodGroup         enums.BloodGroup `gorm:"column:blood_group;type:text;not null;default:UNKNOWN"`
	ResidenceAddress   string           `gorm:"column:residence_address;not null"`
	EmergencyContactNo string           `gorm:"column:emergency_contact_no;not null"`
	SignatureFileID    *uuid.UUID       `gorm:"column:signature_file_id;type:uuid"`
	PhotoFileID        *uuid.UUID       `gorm:"column:photo_file_id;type:uuid"`
	CreatedAt          time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (c *IDCard) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
