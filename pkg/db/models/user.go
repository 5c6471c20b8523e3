package models

import (
	"time"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a candidate or HR admin account.
type User struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Phone          string         `gorm:"column:phone;type:text;not null;uniqueIndex"`
	Email          string         `gorm:"column:email;type:text;not null;uniqueIndex"`
	Name           string         `gorm:"column:name;not null"`
	PasswordHash   string         `gorm:"column:password_hash;not null"`
	PhotoFileID    *uuid.UUID     `gorm:"column:photo_file_id;type:uuid"`
	Role           enums.UserRole `gorm:"column:role;type:text;not null;default:user"`
	PostAppliedFor *string        `gorm:"column:post_applied_for"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
