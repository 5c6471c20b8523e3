package idcard

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/Priyanshpaila/Recruitment-backend/internal/attachments"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/enums"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubCards struct {
	byUser map[uuid.UUID]*models.IDCard
}

func newStubCards() *stubCards {
	return &stubCards{byUser: map[uuid.UUID]*models.IDCard{}}
}

func (s *stubCards) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.IDCard, error) {
	if card, ok := s.byUser[userID]; ok {
		return card, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCards) Upsert(ctx context.Context, card *models.IDCard) (*models.IDCard, error) {
	if existing, ok := s.byUser[card.UserID]; ok {
		existing.Name = card.Name
		existing.BloodGroup = card.BloodGroup
		existing.ResidenceAddress = card.ResidenceAddress
		existing.EmergencyContactNo = card.EmergencyContactNo
		return existing, nil
	}
	card.ID = uuid.New()
	s.byUser[card.UserID] = card
	return card, nil
}

func (s *stubCards) SetSignatureFileID(ctx context.Context, userID uuid.UUID, fileID uuid.UUID) (*models.IDCard, error) {
	card, ok := s.byUser[userID]
	if !ok {
		card = &models.IDCard{ID: uuid.New(), UserID: userID}
		s.byUser[userID] = card
	}
	card.SignatureFileID = &fileID
	return card, nil
}

type stubUsers struct {
	byID map[uuid.UUID]*models.User
}

func (s *stubUsers) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubAttachments struct {
	saved map[uuid.UUID]*models.Attachment
}

func newStubAttachments() *stubAttachments {
	return &stubAttachments{saved: map[uuid.UUID]*models.Attachment{}}
}

func (s *stubAttachments) Save(ctx context.Context, in attachments.SaveInput) (*models.Attachment, error) {
	attachment := &models.Attachment{
		ID:          uuid.New(),
		OwnerUserID: in.OwnerUserID,
		Kind:        in.Kind,
		FileName:    in.FileName,
		ContentType: in.ContentType,
		SizeBytes:   in.SizeBytes,
	}
	s.saved[attachment.ID] = attachment
	return attachment, nil
}

func (s *stubAttachments) Stream(ctx context.Context, fileID uuid.UUID) (*models.Attachment, io.ReadCloser, error) {
	if attachment, ok := s.saved[fileID]; ok {
		return attachment, io.NopCloser(bytes.NewReader([]byte("sig"))), nil
	}
	return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, "file not found")
}

func newTestService(t *testing.T, userPhoto *uuid.UUID) (Service, *stubCards, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	cards := newStubCards()
	svc, err := NewService(ServiceParams{
		Cards: cards,
		Users: &stubUsers{byID: map[uuid.UUID]*models.User{
			userID: {ID: userID, PhotoFileID: userPhoto},
		}},
		Attachments: newStubAttachments(),
	})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc, cards, userID
}

func validRequest() UpsertRequest {
	return UpsertRequest{
		Name:               "ann lee",
		BloodGroup:         "o+",
		ResidenceAddress:   "12 Main Street",
		EmergencyContactNo: "5550134987",
	}
}

func TestUpsertNormalizesAndResolvesPhoto(t *testing.T) {
	photoID := uuid.New()
	svc, _, userID := newTestService(t, &photoID)

	clientPhoto := uuid.NewString()
	req := validRequest()
	req.PhotoFileID = &clientPhoto

	resp, err := svc.Upsert(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if resp.Card.Name != "ANN LEE" {
		t.Fatalf("name must be upper-cased, got %q", resp.Card.Name)
	}
	if resp.Card.BloodGroup != enums.BloodGroupOPos {
		t.Fatalf("unexpected blood group %q", resp.Card.BloodGroup)
	}
	if resp.ResolvedPhotoFileID == nil || *resp.ResolvedPhotoFileID != photoID {
		t.Fatalf("photo must resolve from the user record, got %v", resp.ResolvedPhotoFileID)
	}
}

func TestUpsertIsIdempotentPerUser(t *testing.T) {
	svc, cards, userID := newTestService(t, nil)

	if _, err := svc.Upsert(context.Background(), userID, validRequest()); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	req := validRequest()
	req.Name = "renamed"
	if _, err := svc.Upsert(context.Background(), userID, req); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if len(cards.byUser) != 1 {
		t.Fatalf("expected a single card per user, have %d", len(cards.byUser))
	}
	if cards.byUser[userID].Name != "RENAMED" {
		t.Fatalf("second upsert must update in place, got %q", cards.byUser[userID].Name)
	}
}

func TestUpsertValidation(t *testing.T) {
	svc, _, userID := newTestService(t, nil)

	cases := []struct {
		name   string
		mutate func(*UpsertRequest)
	}{
		{"bad blood group", func(r *UpsertRequest) { r.BloodGroup = "Z+" }},
		{"contact too short", func(r *UpsertRequest) { r.EmergencyContactNo = "123456" }},
		{"contact too long", func(r *UpsertRequest) { r.EmergencyContactNo = "1234567890123456" }},
		{"contact not digits", func(r *UpsertRequest) { r.EmergencyContactNo = "555-013-4987" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := svc.Upsert(context.Background(), userID, req)
			if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestGetMissingCard(t *testing.T) {
	svc, _, userID := newTestService(t, nil)
	_, err := svc.Get(context.Background(), userID)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUploadSignatureCreatesCardWhenAbsent(t *testing.T) {
	svc, cards, userID := newTestService(t, nil)

	payload := []byte("signature png")
	resp, err := svc.UploadSignature(context.Background(), userID, Upload{
		FileName:    "sig.png",
		ContentType: "image/png",
		SizeBytes:   int64(len(payload)),
		Body:        bytes.NewReader(payload),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if resp.FileID == uuid.Nil {
		t.Fatal("expected a file id")
	}
	card := cards.byUser[userID]
	if card == nil || card.SignatureFileID == nil || *card.SignatureFileID != resp.FileID {
		t.Fatal("signature id must be persisted on the card")
	}
}
