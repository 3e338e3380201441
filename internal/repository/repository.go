// Package repository declares the storage interfaces the service layer
// depends on. The sqlite subpackage is the concrete implementation; tests
// substitute in-memory mocks.
package repository

import (
	"context"

	"github.com/sakif/formbot/internal/model"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// Create inserts a new user. Fails with apperror.ErrConflict if the
	// email is already registered.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail returns the user registered under the given email, or
	// apperror.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// GetByID returns the user with the given internal ID, or
	// apperror.ErrNotFound. Used to resolve the authenticated principal.
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// FolderRepository persists folders. The forms listed on a returned folder
// are derived from the forms table at read time — folders store no copy of
// the relationship.
type FolderRepository interface {
	// Create inserts a new folder. Fails with apperror.ErrConflict if the
	// name is taken.
	Create(ctx context.Context, folder *model.Folder) error

	// List returns all folders with their form IDs.
	List(ctx context.Context) ([]model.Folder, error)

	// ListWithForms returns all folders with full form records resolved.
	ListWithForms(ctx context.Context) ([]model.FolderWithForms, error)

	// Delete removes a folder by ID. Fails with apperror.ErrNotFound if it
	// doesn't exist. Forms referencing the folder are left in place.
	Delete(ctx context.Context, id string) error
}

// FormRepository persists forms.
type FormRepository interface {
	Create(ctx context.Context, form *model.Form) error

	// ListByFolder returns the forms whose FolderID matches.
	ListByFolder(ctx context.Context, folderID string) ([]model.Form, error)

	// Delete removes a form by ID. Fails with apperror.ErrNotFound if it
	// doesn't exist.
	Delete(ctx context.Context, id string) error
}

// GlobalFormRepository persists the flat, folder-independent form list.
type GlobalFormRepository interface {
	Create(ctx context.Context, form *model.GlobalForm) error
	List(ctx context.Context) ([]model.GlobalForm, error)
}
