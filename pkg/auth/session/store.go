package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/db"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no active session matches a token identifier.
var ErrNotFound = errors.New("session not found")

// ClientMeta carries the request fingerprint stored alongside a session.
type ClientMeta struct {
	UserAgent string
	IP        string
}

// Store persists bearer sessions. The token identifier column is unique; a
// duplicate insert surfaces as a conflict so the caller can treat a token id
// collision as a creation failure.
type Store struct {
	db *gorm.DB
}

// NewStore binds a session store to the provided GORM DB.
func NewStore(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// Create inserts an active session row for the user.
func (s *Store) Create(ctx context.Context, userID uuid.UUID, tokenID, secretHash string, meta ClientMeta) (*models.Session, error) {
	if tokenID == "" || secretHash == "" {
		return nil, fmt.Errorf("token id and secret hash are required")
	}

	session := &models.Session{
		UserID:     userID,
		TokenID:    tokenID,
		SecretHash: secretHash,
		Active:     true,
		LastUsedAt: time.Now().UTC(),
	}
	if meta.UserAgent != "" {
		ua := meta.UserAgent
		session.UserAgent = &ua
	}
	if meta.IP != "" {
		ip := meta.IP
		session.IP = &ip
	}

	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "session token id already exists")
		}
		return nil, err
	}
	return session, nil
}

// FindActiveByTokenID returns the active session for the public token id.
// ErrNotFound covers both "never existed" and "deactivated" so callers cannot
// distinguish the two.
func (s *Store) FindActiveByTokenID(ctx context.Context, tokenID string) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Where("token_id = ? AND active = ?", tokenID, true).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Touch refreshes the session's last-used timestamp.
func (s *Store) Touch(ctx context.Context, sessionID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", sessionID).
		UpdateColumn("last_used_at", time.Now().UTC()).Error
}

// Deactivate marks a single session inactive. The row is kept for audit.
func (s *Store) Deactivate(ctx context.Context, sessionID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", sessionID).
		UpdateColumn("active", false).Error
}

// DeactivateAllForUser revokes every active session of a user, sparing the
// one identified by exceptID (uuid.Nil spares none).
func (s *Store) DeactivateAllForUser(ctx context.Context, userID uuid.UUID, exceptID uuid.UUID) error {
	query := s.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("user_id = ? AND active = ?", userID, true)
	if exceptID != uuid.Nil {
		query = query.Where("id <> ?", exceptID)
	}
	return query.UpdateColumn("active", false).Error
}
