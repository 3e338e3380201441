package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/sakif/formbot/internal/apperror"
	"github.com/sakif/formbot/internal/model"
)

// =========================================================================
// MOCK FORM REPOSITORY
// =========================================================================

type mockFormRepo struct {
	forms  map[string]*model.Form
	nextID int
}

func newMockFormRepo() *mockFormRepo {
	return &mockFormRepo{forms: make(map[string]*model.Form)}
}

func (m *mockFormRepo) Create(_ context.Context, form *model.Form) error {
	m.nextID++
	form.ID = fmt.Sprintf("mock-%d", m.nextID)
	stored := *form
	m.forms[form.ID] = &stored
	return nil
}

func (m *mockFormRepo) ListByFolder(_ context.Context, folderID string) ([]model.Form, error) {
	result := []model.Form{}
	for _, f := range m.forms {
		if f.FolderID == folderID {
			result = append(result, *f)
		}
	}
	return result, nil
}

func (m *mockFormRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.forms[id]; !ok {
		return apperror.NotFound("form", id)
	}
	delete(m.forms, id)
	return nil
}

func newTestFormService(t *testing.T) (*FormService, *mockFormRepo) {
	t.Helper()
	repo := newMockFormRepo()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewFormService(repo, logger), repo
}

// =========================================================================
// TESTS
// =========================================================================

func TestFormCreate_Success(t *testing.T) {
	svc, _ := newTestFormService(t)

	form, err := svc.Create(context.Background(), "survey", "folder-1")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if form.ID == "" {
		t.Error("expected form to have an ID")
	}
	if form.FolderID != "folder-1" {
		t.Errorf("FolderID = %q, want %q", form.FolderID, "folder-1")
	}
}

func TestFormCreate_MissingFields(t *testing.T) {
	svc, _ := newTestFormService(t)

	tests := []struct {
		name     string
		formName string
		folderID string
	}{
		{"empty name", "", "folder-1"},
		{"whitespace name", "   ", "folder-1"},
		{"empty folderId", "survey", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.formName, tt.folderID)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestFormListByFolder(t *testing.T) {
	svc, _ := newTestFormService(t)

	svc.Create(context.Background(), "one", "folder-1")
	svc.Create(context.Background(), "two", "folder-1")
	svc.Create(context.Background(), "other", "folder-2")

	forms, err := svc.ListByFolder(context.Background(), "folder-1")
	if err != nil {
		t.Fatalf("ListByFolder() error = %v", err)
	}
	if len(forms) != 2 {
		t.Errorf("ListByFolder() returned %d forms, want 2", len(forms))
	}
}

func TestFormListByFolder_EmptyID(t *testing.T) {
	svc, _ := newTestFormService(t)

	_, err := svc.ListByFolder(context.Background(), "  ")
	if !errors.Is(err, apperror.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestFormDelete_Success(t *testing.T) {
	svc, repo := newTestFormService(t)

	form, _ := svc.Create(context.Background(), "doomed", "folder-1")

	if err := svc.Delete(context.Background(), form.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(repo.forms) != 0 {
		t.Error("form not removed from repository")
	}
}

func TestFormDelete_NotFound(t *testing.T) {
	svc, _ := newTestFormService(t)

	err := svc.Delete(context.Background(), "nonexistent")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
