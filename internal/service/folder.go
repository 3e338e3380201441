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

// MaxNameLength bounds every user-supplied name (folders, forms, global
// forms). Long enough for any real title, short enough to keep hostile
// payloads out of the database.
const MaxNameLength = 200

// FolderService handles business logic for folders.
type FolderService struct {
	folders repository.FolderRepository
	logger  *slog.Logger
}

// NewFolderService creates a FolderService.
func NewFolderService(folders repository.FolderRepository, logger *slog.Logger) *FolderService {
	return &FolderService{
		folders: folders,
		logger:  logger,
	}
}

// Create validates and saves a new folder. A taken name surfaces as
// apperror.ErrConflict from the repository.
func (s *FolderService) Create(ctx context.Context, name string) (*model.Folder, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, apperror.ValidationFailed("name", "folder name is required")
	}
	if len(name) > MaxNameLength {
		return nil, apperror.ValidationFailed("name",
			fmt.Sprintf("folder name must be %d characters or less", MaxNameLength))
	}

	folder := &model.Folder{Name: name}
	if err := s.folders.Create(ctx, folder); err != nil {
		return nil, fmt.Errorf("creating folder: %w", err)
	}

	s.logger.Info("folder created",
		slog.String("id", folder.ID),
		slog.String("name", folder.Name),
	)

	return folder, nil
}

// List returns all folders with bare form ID references.
func (s *FolderService) List(ctx context.Context) ([]model.Folder, error) {
	folders, err := s.folders.List(ctx)
	if err != nil {
		s.logger.Error("failed to list folders", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing folders: %w", err)
	}
	return folders, nil
}

// ListWithForms returns all folders with their forms fully resolved.
func (s *FolderService) ListWithForms(ctx context.Context) ([]model.FolderWithForms, error) {
	folders, err := s.folders.ListWithForms(ctx)
	if err != nil {
		s.logger.Error("failed to list folders with forms", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing folders with forms: %w", err)
	}
	return folders, nil
}

// Delete removes a folder by ID. Its forms are left in place.
func (s *FolderService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "folder ID is required")
	}

	if err := s.folders.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting folder %s: %w", id, err)
	}

	s.logger.Info("folder deleted", slog.String("id", id))
	return nil
}
