package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Priyanshpaila/Recruitment-backend/internal/application"
	"github.com/Priyanshpaila/Recruitment-backend/internal/auth"
	"github.com/Priyanshpaila/Recruitment-backend/internal/idcard"
	"github.com/Priyanshpaila/Recruitment-backend/internal/users"
	pkgAuth "github.com/Priyanshpaila/Recruitment-backend/pkg/auth"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/auth/session"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/config"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/enums"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, req auth.RegisterRequest, meta auth.ClientMeta) (*auth.SessionResponse, error) {
	return &auth.SessionResponse{Token: "stub-token"}, nil
}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest, meta auth.ClientMeta) (*auth.SessionResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
}

func (stubAuthService) ChangePassword(ctx context.Context, userID, sessionID uuid.UUID, req auth.ChangePasswordRequest) error {
	return nil
}

func (stubAuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return nil
}

type stubUsersService struct{}

func (stubUsersService) Me(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID, Name: "Stub User"}, nil
}

func (stubUsersService) CreateByAdmin(ctx context.Context, req users.CreateUserRequest) (*users.CreateUserResponse, error) {
	return &users.CreateUserResponse{InitialPassword: "stub0000"}, nil
}

func (stubUsersService) List(ctx context.Context) ([]users.UserSummary, error) {
	return []users.UserSummary{}, nil
}

func (stubUsersService) UploadPhoto(ctx context.Context, userID uuid.UUID, upload users.Upload) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID}, nil
}

func (stubUsersService) StreamPhoto(ctx context.Context, fileID uuid.UUID) (*models.Attachment, io.ReadCloser, error) {
	return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, "file not found")
}

type stubIDCardService struct{}

func (stubIDCardService) Upsert(ctx context.Context, userID uuid.UUID, req idcard.UpsertRequest) (*idcard.CardResponse, error) {
	return &idcard.CardResponse{}, nil
}

func (stubIDCardService) Get(ctx context.Context, userID uuid.UUID) (*idcard.CardResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "id card not found")
}

func (stubIDCardService) UploadSignature(ctx context.Context, userID uuid.UUID, upload idcard.Upload) (*idcard.SignatureResponse, error) {
	return &idcard.SignatureResponse{}, nil
}

func (stubIDCardService) StreamSignature(ctx context.Context, fileID uuid.UUID) (*models.Attachment, io.ReadCloser, error) {
	return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, "file not found")
}

type stubApplicationService struct {
	lastUpdateUser uuid.UUID
}

func (s *stubApplicationService) Submit(ctx context.Context, userID uuid.UUID, doc application.FormDocument) (*application.FormResponse, error) {
	return &application.FormResponse{UserID: userID}, nil
}

func (s *stubApplicationService) Get(ctx context.Context, userID uuid.UUID) (*application.FormResponse, error) {
	return &application.FormResponse{UserID: userID}, nil
}

func (s *stubApplicationService) Update(ctx context.Context, userID uuid.UUID, doc application.FormDocument) (*application.FormResponse, error) {
	s.lastUpdateUser = userID
	return &application.FormResponse{UserID: userID}, nil
}

type testHarness struct {
	handler http.Handler
	store   *session.Store
	gdb     *gorm.DB
	appSvc  *stubApplicationService
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Session{}); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}

	cfg := &config.Config{}
	cfg.App.Env = "development"
	appSvc := &stubApplicationService{}

	handler := NewRouter(Deps{
		Config:      cfg,
		Logger:      logger.New(logger.Options{Level: zerolog.Disabled}),
		Sessions:    session.NewStore(gdb),
		Users:       users.NewRepository(gdb),
		AuthSvc:     stubAuthService{},
		UsersSvc:    stubUsersService{},
		IDCardSvc:   stubIDCardService{},
		AppFormsSvc: appSvc,
	})
	return &testHarness{
		handler: handler,
		store:   session.NewStore(gdb),
		gdb:     gdb,
		appSvc:  appSvc,
	}
}

// mintSession persists a user with an active session and returns the bearer
// token value.
func (h *testHarness) mintSession(t *testing.T, role enums.UserRole) string {
	t.Helper()

	user := &models.User{
		Phone:        "+91" + uuid.NewString()[:10],
		Email:        uuid.NewString() + "@example.com",
		Name:         "Route Tester",
		PasswordHash: "x",
		Role:         role,
	}
	if err := h.gdb.Create(user).Error; err != nil {
		t.Fatalf("creating user: %v", err)
	}

	token, err := pkgAuth.CreateSessionToken(config.PasswordConfig{})
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}
	if _, err := h.store.Create(context.Background(), user.ID, token.TokenID, token.SecretHash, session.ClientMeta{}); err != nil {
		t.Fatalf("creating session: %v", err)
	}
	return token.Token
}

func (h *testHarness) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	h := newHarness(t)
	rec := h.do(t, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	h := newHarness(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/me"},
		{http.MethodGet, "/api/idcard/me"},
		{http.MethodPost, "/api/application/submit"},
		{http.MethodPost, "/api/auth/logout"},
	}
	for _, tc := range paths {
		rec := h.do(t, tc.method, tc.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestAuthenticatedUserReachesProfile(t *testing.T) {
	h := newHarness(t)
	token := h.mintSession(t, enums.UserRoleUser)

	rec := h.do(t, http.MethodGet, "/api/users/me", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data users.UserDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if envelope.Data.Name != "Stub User" {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	h := newHarness(t)
	token := h.mintSession(t, enums.UserRoleUser)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/listusers"},
		{http.MethodPost, "/api/users/create"},
		{http.MethodGet, "/api/application/" + uuid.NewString()},
	} {
		rec := h.do(t, tc.method, tc.path, token, "")
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s %s: expected 403, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestAdminCanUseDoubledApplicationPaths(t *testing.T) {
	h := newHarness(t)
	token := h.mintSession(t, enums.UserRoleAdmin)
	target := uuid.New()

	rec := h.do(t, http.MethodPost, "/api/application/application/update/"+target.String(), token, `{"presentAddress":"44 Hill Road"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if h.appSvc.lastUpdateUser != target {
		t.Fatalf("update routed to wrong user: %s", h.appSvc.lastUpdateUser)
	}

	rec = h.do(t, http.MethodGet, "/api/application/application/data/"+target.String(), token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("data: expected 200, got %d", rec.Code)
	}
}

func TestApplicationSubmitAcceptsUnknownFields(t *testing.T) {
	h := newHarness(t)
	token := h.mintSession(t, enums.UserRoleUser)

	body := `{"postAppliedFor":"Engineer","legacyFrontendField":"x"}`
	rec := h.do(t, http.MethodPost, "/api/application/submit", token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginRouteIsPublic(t *testing.T) {
	h := newHarness(t)
	rec := h.do(t, http.MethodPost, "/api/auth/login", "", `{"phone":"+919876543210","password":"whatever"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("stub login must surface 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
