package application

import (
	"context"
	"errors"
	"testing"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubForms struct {
	byUser map[uuid.UUID]*models.Application
}

func newStubForms() *stubForms {
	return &stubForms{byUser: map[uuid.UUID]*models.Application{}}
}

func (s *stubForms) Create(ctx context.Context, app *models.Application) error {
	if _, ok := s.byUser[app.UserID]; ok {
		return errors.New(`duplicate key value violates unique constraint "idx_applications_user_id"`)
	}
	app.ID = uuid.New()
	s.byUser[app.UserID] = app
	return nil
}

func (s *stubForms) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Application, error) {
	if app, ok := s.byUser[userID]; ok {
		return app, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubForms) Save(ctx context.Context, app *models.Application) error {
	s.byUser[app.UserID] = app
	return nil
}

func strptr(v string) *string     { return &v }
func floatptr(v float64) *float64 { return &v }

func newTestService(t *testing.T) (Service, *stubForms) {
	t.Helper()
	forms := newStubForms()
	svc, err := NewService(ServiceParams{Repo: forms})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc, forms
}

func TestSubmitPersistsDocument(t *testing.T) {
	svc, forms := newTestService(t)
	userID := uuid.New()

	resp, err := svc.Submit(context.Background(), userID, FormDocument{
		PostAppliedFor: strptr("Plant Engineer"),
		PresentAddress: strptr("12 Main Street"),
		HeightCm:       floatptr(172),
		FamilyMembers: &models.FamilyMembers{
			{Name: "R Lee", Relationship: "father", Occupation: "retired"},
		},
		LanguagesKnown: &models.LanguageSkills{
			{Language: "Hindi", Speak: true, Read: true, Write: true},
		},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if resp.UserID != userID {
		t.Fatalf("response owner mismatch: %s", resp.UserID)
	}

	stored := forms.byUser[userID]
	if stored.PostAppliedFor != "Plant Engineer" {
		t.Fatalf("unexpected post: %q", stored.PostAppliedFor)
	}
	if len(stored.FamilyMembers) != 1 || stored.FamilyMembers[0].Name != "R Lee" {
		t.Fatal("family members not persisted")
	}
	if len(stored.LanguagesKnown) != 1 || !stored.LanguagesKnown[0].Write {
		t.Fatal("language skills not persisted")
	}
}

func TestSubmitRequiresPost(t *testing.T) {
	svc, _ := newTestService(t)

	for _, post := range []*string{nil, strptr("   ")} {
		_, err := svc.Submit(context.Background(), uuid.New(), FormDocument{PostAppliedFor: post})
		if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	}
}

func TestSubmitTwiceConflicts(t *testing.T) {
	svc, _ := newTestService(t)
	userID := uuid.New()

	doc := FormDocument{PostAppliedFor: strptr("Plant Engineer")}
	if _, err := svc.Submit(context.Background(), userID, doc); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	_, err := svc.Submit(context.Background(), userID, doc)
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestGetMissingForm(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Get(context.Background(), uuid.New())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	svc, forms := newTestService(t)
	userID := uuid.New()

	_, err := svc.Submit(context.Background(), userID, FormDocument{
		PostAppliedFor: strptr("Plant Engineer"),
		PresentAddress: strptr("12 Main Street"),
		Mobile:         strptr("+919876543210"),
		EducationHistory: &models.EducationHistory{
			{InstituteName: "IIT", DegreeOrExam: "B.Tech"},
		},
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	resp, err := svc.Update(context.Background(), userID, FormDocument{
		PresentAddress: strptr("44 Hill Road"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored := forms.byUser[userID]
	if *stored.PresentAddress != "44 Hill Road" {
		t.Fatalf("address not updated: %q", *stored.PresentAddress)
	}
	if *stored.Mobile != "+919876543210" {
		t.Fatal("untouched field must survive the update")
	}
	if stored.PostAppliedFor != "Plant Engineer" {
		t.Fatal("post must survive the update")
	}
	if len(stored.EducationHistory) != 1 {
		t.Fatal("education history must survive the update")
	}
	if *resp.PresentAddress != "44 Hill Road" {
		t.Fatal("response must reflect the merge")
	}
}

func TestUpdateMissingForm(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Update(context.Background(), uuid.New(), FormDocument{
		PresentAddress: strptr("44 Hill Road"),
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateRejectsBlankPost(t *testing.T) {
	svc, _ := newTestService(t)
	userID := uuid.New()

	if _, err := svc.Submit(context.Background(), userID, FormDocument{PostAppliedFor: strptr("Plant Engineer")}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	_, err := svc.Update(context.Background(), userID, FormDocument{PostAppliedFor: strptr("  ")})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
