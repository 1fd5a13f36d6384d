package repository

import (
	"context"
	"database/sql"
	"fmt"

	"keepnote/internal/models"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *sql.DB
}

// Create inserts a new user. Returns ErrAlreadyExists if the id is taken.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO keepnote.users (id, name, email, mobile, password_hash, added_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING added_at`
	err := r.db.QueryRowContext(ctx, query, user.ID, user.Name, user.Email, user.Mobile, user.PasswordHash).
		Scan(&user.AddedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("user %s: %w", user.ID, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by id. Returns ErrNotFound when absent.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, email, mobile, password_hash, added_at
		FROM keepnote.users
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Mobile, &user.PasswordHash, &user.AddedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// Update overwrites the stored user record by id.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE keepnote.users
		SET name = $2, email = $3, mobile = $4, password_hash = $5
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.Mobile, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", user.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a user by id. Returns ErrNotFound when absent.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM keepnote.users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}
