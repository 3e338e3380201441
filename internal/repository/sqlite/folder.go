package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/formbot/internal/apperror"
	"github.com/sakif/formbot/internal/model"
	"github.com/sakif/formbot/internal/repository"
)

// FolderStore implements repository.FolderRepository on SQLite.
type FolderStore struct {
	conn *sql.DB
}

// compile-time check that *FolderStore implements repository.FolderRepository
var _ repository.FolderRepository = (*FolderStore)(nil)

// Create inserts a new folder. The folder name is unique — a duplicate
// surfaces as apperror.Conflict. Same check-then-insert shape as user
// creation, with the UNIQUE constraint as the backstop for races.
func (s *FolderStore) Create(ctx context.Context, folder *model.Folder) error {
	var existing string
	err := s.conn.QueryRowContext(ctx,
		`SELECT id FROM folders WHERE name = ?`, folder.Name,
	).Scan(&existing)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("sqlite: checking folder name %q: %w", folder.Name, err)
	}
	if existing != "" {
		return apperror.Conflict("name", "folder name must be unique")
	}

	now := time.Now()
	folder.ID = xid.New().String()
	folder.FormIDs = []string{}
	folder.CreatedAt = now
	folder.UpdatedAt = now

	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO folders (id, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		folder.ID,
		folder.Name,
		folder.CreatedAt,
		folder.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting folder %q: %w", folder.Name, err)
	}

	return nil
}

// List returns all folders, each with the IDs of its forms.
//
// The form list is DERIVED here, not stored: forms own the relationship
// via folder_id, and we join it back at read time. One source of truth —
// nothing to drift.
func (s *FolderStore) List(ctx context.Context) ([]model.Folder, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at
		 FROM folders
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing folders: %w", err)
	}
	defer rows.Close()

	folders := []model.Folder{}
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning folder row: %w", err)
		}
		f.FormIDs = []string{}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating folders: %w", err)
	}

	if err := s.attachFormIDs(ctx, folders); err != nil {
		return nil, err
	}

	return folders, nil
}

// attachFormIDs fills FormIDs for each folder from the forms table.
// Single pass over forms ordered by creation time, bucketed by folder, so
// each folder's list is in insertion order.
func (s *FolderStore) attachFormIDs(ctx context.Context, folders []model.Folder) error {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, folder_id FROM forms ORDER BY created_at ASC`,
	)
	if err != nil {
		return fmt.Errorf("sqlite: listing form ids: %w", err)
	}
	defer rows.Close()

	byFolder := make(map[string][]string)
	for rows.Next() {
		var id, folderID string
		if err := rows.Scan(&id, &folderID); err != nil {
			return fmt.Errorf("sqlite: scanning form id row: %w", err)
		}
		byFolder[folderID] = append(byFolder[folderID], id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("sqlite: iterating form ids: %w", err)
	}

	for i := range folders {
		if ids, ok := byFolder[folders[i].ID]; ok {
			folders[i].FormIDs = ids
		}
	}

	return nil
}

// ListWithForms returns all folders with their forms fully resolved —
// the "populated" listing served to authenticated clients.
func (s *FolderStore) ListWithForms(ctx context.Context) ([]model.FolderWithForms, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at
		 FROM folders
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing folders: %w", err)
	}
	defer rows.Close()

	folders := []model.FolderWithForms{}
	for rows.Next() {
		var f model.FolderWithForms
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning folder row: %w", err)
		}
		f.Forms = []model.Form{}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating folders: %w", err)
	}

	formRows, err := s.conn.QueryContext(ctx,
		`SELECT id, name, folder_id, created_at, updated_at
		 FROM forms ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing forms: %w", err)
	}
	defer formRows.Close()

	byFolder := make(map[string][]model.Form)
	for formRows.Next() {
		var f model.Form
		if err := formRows.Scan(&f.ID, &f.Name, &f.FolderID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning form row: %w", err)
		}
		byFolder[f.FolderID] = append(byFolder[f.FolderID], f)
	}
	if err := formRows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating forms: %w", err)
	}

	for i := range folders {
		if forms, ok := byFolder[folders[i].ID]; ok {
			folders[i].Forms = forms
		}
	}

	return folders, nil
}

// Delete removes a folder by ID. Forms pointing at it are deliberately
// left untouched.
func (s *FolderStore) Delete(ctx context.Context, id string) error {
	result, err := s.conn.ExecContext(ctx,
		`DELETE FROM folders WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting folder %s: %w", id, err)
	}

	// RowsAffected tells us whether the WHERE matched anything.
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("folder", id)
	}

	return nil
}
