package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Priyanshpaila/Recruitment-backend/internal/notify"
	"github.com/Priyanshpaila/Recruitment-backend/internal/users"
	pkgAuth "github.com/Priyanshpaila/Recruitment-backend/pkg/auth"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/auth/session"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/config"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/enums"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/mail"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/phone"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the auth controller.
type Service interface {
	Register(ctx context.Context, req RegisterRequest, meta ClientMeta) (*SessionResponse, error)
	Login(ctx context.Context, req LoginRequest, meta ClientMeta) (*SessionResponse, error)
	ChangePassword(ctx context.Context, userID, sessionID uuid.UUID, req ChangePasswordRequest) error
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

type userRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

type sessionStore interface {
	Create(ctx context.Context, userID uuid.UUID, tokenID, secretHash string, meta session.ClientMeta) (*models.Session, error)
	Deactivate(ctx context.Context, sessionID uuid.UUID) error
	DeactivateAllForUser(ctx context.Context, userID uuid.UUID, exceptID uuid.UUID) error
}

type welcomeNotifier interface {
	EnqueueWelcome(to string, data mail.WelcomeData)
}

type service struct {
	users     userRepository
	sessions  sessionStore
	notifier  welcomeNotifier
	passwords config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	SessionStore   sessionStore
	Notifier       *notify.Notifier
	PasswordConfig config.PasswordConfig
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.SessionStore == nil {
		return nil, fmt.Errorf("session store is required")
	}
	svc := &service{
		users:     params.UserRepo,
		sessions:  params.SessionStore,
		passwords: params.PasswordConfig,
	}
	if params.Notifier != nil {
		svc.notifier = params.Notifier
	}
	return svc, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest, meta ClientMeta) (*SessionResponse, error) {
	e164, err := phone.Normalize(req.Phone)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)

	exists, err := s.users.ExistsByPhoneOrEmail(ctx, e164, email)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking existing user")
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "phone or email already registered")
	}

	initialPassword := security.InitialPassword(name, e164)
	hash, err := security.HashSecret(initialPassword, s.passwords)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	user := &models.User{
		Phone:        e164,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         enums.UserRoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating user")
	}

	token, err := s.openSession(ctx, user.ID, meta)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.EnqueueWelcome(email, mail.WelcomeData{
			Name:     name,
			Phone:    e164,
			Email:    email,
			Password: initialPassword,
		})
	}

	return &SessionResponse{Token: token, User: users.FromModel(user)}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest, meta ClientMeta) (*SessionResponse, error) {
	e164, err := phone.Normalize(req.Phone)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	user, err := s.users.FindByPhone(ctx, e164)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}

	ok, err := security.VerifySecret(req.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	token, err := s.openSession(ctx, user.ID, meta)
	if err != nil {
		return nil, err
	}
	return &SessionResponse{Token: token, User: users.FromModel(user)}, nil
}

func (s *service) ChangePassword(ctx context.Context, userID, sessionID uuid.UUID, req ChangePasswordRequest) error {
	if !hasLetterAndDigit(req.NewPassword) {
		return pkgerrors.New(pkgerrors.CodeValidation, "new password must contain at least one letter and one digit")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}

	currentOK, err := security.VerifySecret(req.CurrentPassword, user.PasswordHash)
	if err != nil || !currentOK {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "current password is incorrect")
	}

	sameAsCurrent, err := security.VerifySecret(req.NewPassword, user.PasswordHash)
	if err == nil && sameAsCurrent {
		return pkgerrors.New(pkgerrors.CodeValidation, "new password must be different from the current password")
	}

	hash, err := security.HashSecret(req.NewPassword, s.passwords)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}
	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating password")
	}

	// Everyone else gets logged out; the caller keeps their session.
	if err := s.sessions.DeactivateAllForUser(ctx, user.ID, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "revoking sessions")
	}
	return nil
}

func (s *service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return nil
	}
	if err := s.sessions.Deactivate(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deactivating session")
	}
	return nil
}

func (s *service) openSession(ctx context.Context, userID uuid.UUID, meta ClientMeta) (string, error) {
	token, err := pkgAuth.CreateSessionToken(s.passwords)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting session token")
	}
	_, err = s.sessions.Create(ctx, userID, token.TokenID, token.SecretHash, session.ClientMeta{
		UserAgent: meta.UserAgent,
		IP:        meta.IP,
	})
	if err != nil {
		return "", err
	}
	return token.Token, nil
}

func hasLetterAndDigit(value string) bool {
	var letter, digit bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}
