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

// GlobalFormService handles business logic for the flat global form list.
type GlobalFormService struct {
	forms  repository.GlobalFormRepository
	logger *slog.Logger
}

// NewGlobalFormService creates a GlobalFormService.
func NewGlobalFormService(forms repository.GlobalFormRepository, logger *slog.Logger) *GlobalFormService {
	return &GlobalFormService{
		forms:  forms,
		logger: logger,
	}
}

// Create validates and saves a new global form. Names need not be unique.
func (s *GlobalFormService) Create(ctx context.Context, name string) (*model.GlobalForm, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, apperror.ValidationFailed("name", "form name is required")
	}
	if len(name) > MaxNameLength {
		return nil, apperror.ValidationFailed("name",
			fmt.Sprintf("form name must be %d characters or less", MaxNameLength))
	}

	form := &model.GlobalForm{Name: name}
	if err := s.forms.Create(ctx, form); err != nil {
		s.logger.Error("failed to create global form",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating global form: %w", err)
	}

	s.logger.Info("global form created", slog.String("id", form.ID))

	return form, nil
}

// List returns all global forms.
func (s *GlobalFormService) List(ctx context.Context) ([]model.GlobalForm, error) {
	forms, err := s.forms.List(ctx)
	if err != nil {
		s.logger.Error("failed to list global forms", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing global forms: %w", err)
	}
	return forms, nil
}
