package auth

import (
	"github.com/Priyanshpaila/Recruitment-backend/internal/users"
)

// RegisterRequest is the self-service signup payload. The password is never
// client-supplied; it is derived from the name and phone.
type RegisterRequest struct {
	Phone string `json:"phone" validate:"required,min=6"`
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email,max=200"`
}

// LoginRequest authenticates by phone number.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,min=6"`
	Password string `json:"password" validate:"required,min=4"`
}

// ChangePasswordRequest rotates the caller's credential.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,min=4"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=64"`
}

// SessionResponse returns a fresh bearer token with the user projection.
type SessionResponse struct {
	Token string        `json:"token"`
	User  users.UserDTO `json:"user"`
}

// ClientMeta captures the request fingerprint recorded on the session.
type ClientMeta struct {
	UserAgent string
	IP        string
}
