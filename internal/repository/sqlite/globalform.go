package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/formbot/internal/model"
	"github.com/sakif/formbot/internal/repository"
)

// GlobalFormStore implements repository.GlobalFormRepository on SQLite.
// Global forms are a flat list — no folder relationship, no uniqueness.
type GlobalFormStore struct {
	conn *sql.DB
}

// compile-time check that *GlobalFormStore implements repository.GlobalFormRepository
var _ repository.GlobalFormRepository = (*GlobalFormStore)(nil)

// Create inserts a new global form.
func (s *GlobalFormStore) Create(ctx context.Context, form *model.GlobalForm) error {
	now := time.Now()
	form.ID = xid.New().String()
	form.CreatedAt = now
	form.UpdatedAt = now

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO global_forms (id, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		form.ID,
		form.Name,
		form.CreatedAt,
		form.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting global form %q: %w", form.Name, err)
	}

	return nil
}

// List returns all global forms, oldest first.
func (s *GlobalFormStore) List(ctx context.Context) ([]model.GlobalForm, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at
		 FROM global_forms
		 ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing global forms: %w", err)
	}
	defer rows.Close()

	forms := []model.GlobalForm{}
	for rows.Next() {
		var f model.GlobalForm
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning global form row: %w", err)
		}
		forms = append(forms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating global forms: %w", err)
	}

	return forms, nil
}
