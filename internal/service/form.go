package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/formbot/internal/apperror"
	"github.com/sakif/formbot/internal/model"
	"github.com/sakif/formbot/internal/repository"
)

// FormService handles business logic for forms.
type FormService struct {
	forms  repository.FormRepository
	logger *slog.Logger
}

// NewFormService creates a FormService.
func NewFormService(forms repository.FormRepository, logger *slog.Logger) *FormService {
	return &FormService{
		forms:  forms,
		logger: logger,
	}
}

// Create validates and saves a new form under the given folder.
//
// The folder is not looked up first: a form pointing at an unknown folder
// simply never shows up in any folder listing, which is how the frontend
// has always treated it. One write, no cross-entity coordination.
func (s *FormService) Create(ctx context.Context, name, folderID string) (*model.Form, error) {
	name = strings.TrimSpace(name)
	folderID = strings.TrimSpace(folderID)

	if name == "" {
		return nil, apperror.ValidationFailed("name", "form name is required")
	}
	if len(name) > MaxNameLength {
		return nil, apperror.ValidationFailed("name",
			fmt.Sprintf("form name must be %d characters or less", MaxNameLength))
	}
	if folderID == "" {
		return nil, apperror.ValidationFailed("folderId", "folder ID is required")
	}

	form := &model.Form{
		Name:     name,
		FolderID: folderID,
	}
	if err := s.forms.Create(ctx, form); err != nil {
		s.logger.Error("failed to create form",
			slog.String("name", name),
			slog.String("folderID", folderID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating form: %w", err)
	}

	s.logger.Info("form created",
		slog.String("id", form.ID),
		slog.String("folderID", form.FolderID),
	)

	return form, nil
}

// ListByFolder returns the forms belonging to the given folder.
func (s *FormService) ListByFolder(ctx context.Context, folderID string) ([]model.Form, error) {
	folderID = strings.TrimSpace(folderID)
	if folderID == "" {
		return nil, apperror.ValidationFailed("folderId", "folder ID is required")
	}

	forms, err := s.forms.ListByFolder(ctx, folderID)
	if err != nil {
		s.logger.Error("failed to list forms",
			slog.String("folderID", folderID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing forms: %w", err)
	}

	return forms, nil
}

// Delete removes a form by ID.
func (s *FormService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "form ID is required")
	}

	if err := s.forms.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting form %s: %w", id, err)
	}

	s.logger.Info("form deleted", slog.String("id", id))
	return nil
}
