package session

import (
	"context"
	"testing"
	"time"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Session{}))
	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Phone:        "+15550100" + uuid.NewString()[:4],
		Email:        uuid.NewString() + "@example.com",
		Name:         "Test User",
		PasswordHash: "hash",
	}
	require.NoError(t, gdb.Create(user).Error)
	return user
}

func TestStoreCreateAndFind(t *testing.T) {
	gdb := testDB(t)
	store := NewStore(gdb)
	user := seedUser(t, gdb)
	ctx := context.Background()

	created, err := store.Create(ctx, user.ID, "token-a", "secret-hash", ClientMeta{UserAgent: "ua", IP: "10.0.0.1"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.True(t, created.Active)
	require.NotNil(t, created.UserAgent)
	require.Equal(t, "ua", *created.UserAgent)

	found, err := store.FindActiveByTokenID(ctx, "token-a")
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)
	require.Equal(t, user.ID, found.UserID)
}

func TestStoreCreateDuplicateTokenID(t *testing.T) {
	gdb := testDB(t)
	store := NewStore(gdb)
	user := seedUser(t, gdb)
	ctx := context.Background()

	_, err := store.Create(ctx, user.ID, "token-dup", "hash-1", ClientMeta{})
	require.NoError(t, err)

	_, err = store.Create(ctx, user.ID, "token-dup", "hash-2", ClientMeta{})
	require.Error(t, err)

	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, pkgerrors.CodeConflict, appErr.Code())
}

func TestStoreFindSkipsInactive(t *testing.T) {
	gdb := testDB(t)
	store := NewStore(gdb)
	user := seedUser(t, gdb)
	ctx := context.Background()

	created, err := store.Create(ctx, user.ID, "token-b", "hash", ClientMeta{})
	require.NoError(t, err)

	require.NoError(t, store.Deactivate(ctx, created.ID))

	_, err = store.FindActiveByTokenID(ctx, "token-b")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreFindUnknownToken(t *testing.T) {
	gdb := testDB(t)
	store := NewStore(gdb)

	_, err := store.FindActiveByTokenID(context.Background(), "never-issued")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreTouch(t *testing.T) {
	gdb := testDB(t)
	store := NewStore(gdb)
	user := seedUser(t, gdb)
	ctx := context.Background()

	created, err := store.Create(ctx, user.ID, "token-c", "hash", ClientMeta{})
	require.NoError(t, err)

	past := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, gdb.Model(&models.Session{}).Where("id = ?", created.ID).UpdateColumn("last_used_at", past).Error)

	require.NoError(t, store.Touch(ctx, created.ID))

	var reloaded models.Session
	require.NoError(t, gdb.First(&reloaded, "id = ?", created.ID).Error)
	require.True(t, reloaded.LastUsedAt.After(past))
}

func TestStoreDeactivateAllForUser(t *testing.T) {
	gdb := testDB(t)
	store := NewStore(gdb)
	user := seedUser(t, gdb)
	other := seedUser(t, gdb)
	ctx := context.Background()

	first, err := store.Create(ctx, user.ID, "token-1", "hash", ClientMeta{})
	require.NoError(t, err)
	_, err = store.Create(ctx, user.ID, "token-2", "hash", ClientMeta{})
	require.NoError(t, err)
	_, err = store.Create(ctx, other.ID, "token-3", "hash", ClientMeta{})
	require.NoError(t, err)

	require.NoError(t, store.DeactivateAllForUser(ctx, user.ID, first.ID))

	kept, err := store.FindActiveByTokenID(ctx, "token-1")
	require.NoError(t, err)
	require.Equal(t, first.ID, kept.ID)

	_, err = store.FindActiveByTokenID(ctx, "token-2")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = store.FindActiveByTokenID(ctx, "token-3")
	require.NoError(t, err)
}
