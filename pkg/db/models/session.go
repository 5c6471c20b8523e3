package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is the server-side half of a bearer session token. Only the hash of
// the token secret is persisted; the token identifier is the public lookup key.
type Session struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	TokenID    string    `gorm:"column:token_id;type:text;not null;uniqueIndex"`
	SecretHash string    `gorm:"column:secret_hash;not null"`
	UserAgent  *string   `gorm:"column:user_agent"`
	IP         *string   `gorm:"column:ip"`
	Active     bool      `gorm:"column:active;not null;default:true"`
	LastUsedAt time.Time `gorm:"column:last_used_at;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.LastUsedAt.IsZero() {
		s.LastUsedAt = time.Now().UTC()
	}
	return nil
}
