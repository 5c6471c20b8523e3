package idcard

import (
	"time"

	"github.com/google/uuid"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/enums"
)

// UpsertRequest carries the printable card fields. A photoFileId in the body
// is accepted but ignored; the user profile owns the photo reference.
type UpsertRequest struct {
	Name               string  `json:"name" validate:"required,min=1,max=120"`
	BloodGroup         string  `json:"bloodGroup" validate:"required"`
	ResidenceAddress   string  `json:"residenceAddress" validate:"required,min=1,max=500"`
	EmergencyContactNo string  `json:"emergencyContactNo" validate:"required"`
	SignatureFileID    *string `json:"signatureFileId,omitempty"`
	PhotoFileID        *string `json:"photoFileId,omitempty"`
}

// CardDTO is the card projection returned to clients.
type CardDTO struct {
	ID                 uuid.UUID        `json:"id"`
	UserID             uuid.UUID        `json:"userId"`
	Name               string           `json:"name"`
	BloodGroup         enums.BloodGroup `json:"bloodGroup"`
	ResidenceAddress   string           `json:"residenceAddress"`
	EmergencyContactNo string           `json:"emergencyContactNo"`
	SignatureFileID    *uuid.UUID       `json:"signatureFileId"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// CardResponse pairs the card with the photo id resolved from the user.
type CardResponse struct {
	Card                CardDTO    `json:"card"`
	ResolvedPhotoFileID *uuid.UUID `json:"resolvedPhotoFileId"`
}

// SignatureResponse confirms an upload and echoes the updated card.
type SignatureResponse struct {
	FileID uuid.UUID `json:"fileId"`
	Card   CardDTO   `json:"card"`
}

func cardFromModel(c *models.IDCard) CardDTO {
	if c == nil {
		return CardDTO{}
	}
	return CardDTO{
		ID:                 c.ID,
		UserID:             c.UserID,
		Name:               c.Name,
		BloodGroup:         c.BloodGroup,
		ResidenceAddress:   c.ResidenceAddress,
		EmergencyContactNo: c.EmergencyContactNo,
		SignatureFileID:    c.SignatureFileID,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
