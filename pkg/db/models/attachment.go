package models

import (
	"time"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attachment captures metadata for a binary object held by the content store.
// The object store owns the bytes; rows here are referenced weakly by id from
// users and id cards.
type Attachment struct {
	ID          uuid.UUID            `gorm:"column:id;type:uuid;primaryKey"`
	OwnerUserID uuid.UUID            `gorm:"column:owner_user_id;type:uuid;not null;index"`
	Kind        enums.AttachmentKind `gorm:"column:kind;type:text;not null"`
	StorageKey  string               `gorm:"column:storage_key;type:text;not null;uniqueIndex"`
	FileName    string               `gorm:"column:file_name;not null"`
	ContentType string               `gorm:"column:content_type"`
	SizeBytes   int64                `gorm:"column:size_bytes;not null"`
	CreatedAt   time.Time            `gorm:"column:created_at;autoCreateTime"`
}

func (a *Attachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
