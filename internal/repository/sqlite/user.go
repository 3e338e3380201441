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

// UserStore implements repository.UserRepository on SQLite.
type UserStore struct {
	conn *sql.DB
}

// compile-time check that *UserStore implements repository.UserRepository
var _ repository.UserRepository = (*UserStore)(nil)

// Create inserts a new user.
//
// Email uniqueness is enforced by the UNIQUE constraint on the column, but
// we check first so a duplicate surfaces as a clean apperror.Conflict
// instead of a driver-specific constraint error. The constraint remains
// the backstop if two signups race between the check and the insert.
func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	var existing string
	err := s.conn.QueryRowContext(ctx,
		`SELECT id FROM users WHERE email = ?`, user.Email,
	).Scan(&existing)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("sqlite: checking email %s: %w", user.Email, err)
	}
	if existing != "" {
		return apperror.Conflict("email", "email already exists")
	}

	now := time.Now()
	user.ID = xid.New().String()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting user (email=%s): %w", user.Email, err)
	}

	return nil
}

// GetByEmail retrieves the user registered under the given email.
// Returns apperror.ErrNotFound if no such user exists.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := s.conn.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at, updated_at
		 FROM users WHERE email = ?`,
		email,
	).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", email)
		}
		return nil, fmt.Errorf("sqlite: getting user by email %s: %w", email, err)
	}

	return &u, nil
}

// GetByID retrieves a user by internal ID.
// Returns apperror.ErrNotFound if no such user exists.
func (s *UserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User

	err := s.conn.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at, updated_at
		 FROM users WHERE id = ?`,
		id,
	).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", id)
		}
		return nil, fmt.Errorf("sqlite: getting user %s: %w", id, err)
	}

	return &u, nil
}
