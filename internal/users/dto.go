package users

import (
	"github.com/google/uuid"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/enums"
)

// UserDTO is the transport shape that omits credentials.
type UserDTO struct {
	ID             uuid.UUID      `json:"id"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	Name           string         `json:"name"`
	PhotoFileID    *uuid.UUID     `json:"photoFileId"`
	Role           enums.UserRole `json:"role"`
	PostAppliedFor *string        `json:"postAppliedFor"`
}

// UserSummary is the reduced projection used by the admin listing.
type UserSummary struct {
	ID             uuid.UUID `json:"id"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	PostAppliedFor *string   `json:"postAppliedFor"`
}

// CreateUserRequest is the admin user-creation payload.
type CreateUserRequest struct {
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Name           string `json:"name" validate:"required,min=2,max=120"`
	PostAppliedFor string `json:"postAppliedFor" validate:"required,max=120"`
}

// CreateUserResponse returns the projection plus the one-time credential.
type CreateUserResponse struct {
	User            UserDTO `json:"user"`
	InitialPassword string  `json:"initialPassword"`
}

func FromModel(u *models.User) UserDTO {
	if u == nil {
		return UserDTO{}
	}
	return UserDTO{
		ID:             u.ID,
		Phone:          u.Phone,
		Email:          u.Email,
		Name:           u.Name,
		PhotoFileID:    u.PhotoFileID,
		Role:           u.Role,
		PostAppliedFor: u.PostAppliedFor,
	}
}

func summaryFromModel(u models.User) UserSummary {
	return UserSummary{
		ID:             u.ID,
		Phone:          u.Phone,
		Email:          u.Email,
		Name:           u.Name,
		PostAppliedFor: u.PostAppliedFor,
	}
}
