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

// FormStore implements repository.FormRepository on SQLite.
type FormStore struct {
	conn *sql.DB
}

// compile-time check that *FormStore implements repository.FormRepository
var _ repository.FormRepository = (*FormStore)(nil)

// Create inserts a new form. A single write: the folder side of the
// relationship is derived from folder_id at read time, so there is no
// second document to update and no window where the two disagree.
func (s *FormStore) Create(ctx context.Context, form *model.Form) error {
	now := time.Now()
	form.ID = xid.New().String()
	form.CreatedAt = now
	form.UpdatedAt = now

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO forms (id, name, folder_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		form.ID,
		form.Name,
		form.FolderID,
		form.CreatedAt,
		form.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting form %q: %w", form.Name, err)
	}

	return nil
}

// ListByFolder returns the forms whose folder_id matches, oldest first.
// A folderID with no forms (or no folder at all) yields an empty list.
func (s *FormStore) ListByFolder(ctx context.Context, folderID string) ([]model.Form, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, name, folder_id, created_at, updated_at
		 FROM forms
		 WHERE folder_id = ?
		 ORDER BY created_at ASC`,
		folderID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing forms for folder %s: %w", folderID, err)
	}
	defer rows.Close()

	forms := []model.Form{}
	for rows.Next() {
		var f model.Form
		if err := rows.Scan(&f.ID, &f.Name, &f.FolderID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning form row: %w", err)
		}
		forms = append(forms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating forms: %w", err)
	}

	return forms, nil
}

// Delete removes a form by ID. Also a single write — the parent folder's
// view updates automatically on the next read.
func (s *FormStore) Delete(ctx context.Context, id string) error {
	result, err := s.conn.ExecContext(ctx,
		`DELETE FROM forms WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting form %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("form", id)
	}

	return nil
}
