package repository

import (
	"context"
	"database/sql"
	"fmt"

	"keepnote/internal/models"
)

// NoteRepository handles CRUD for notes.
type NoteRepository struct {
	db *sql.DB
}

// Create inserts a new note with its client-supplied id.
func (r *NoteRepository) Create(ctx context.Context, n *models.Note) error {
	query := `
		INSERT INTO keepnote.notes (id, title, content, status, category_id, reminder_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		n.ID, n.Title, n.Content, n.Status, n.CategoryID, n.ReminderID, n.CreatedBy).
		Scan(&n.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("note %d: %w", n.ID, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// FindByID retrieves a note by id. Returns ErrNotFound when absent.
func (r *NoteRepository) FindByID(ctx context.Context, id int) (*models.Note, error) {
	n := &models.Note{}
	query := `
		SELECT id, title, content, status, category_id, reminder_id, created_by, created_at
		FROM keepnote.notes
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&n.ID, &n.Title, &n.Content, &n.Status, &n.CategoryID, &n.ReminderID, &n.CreatedBy, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	return n, nil
}

// FindByOwner lists the notes created by the given user, in insertion order.
func (r *NoteRepository) FindByOwner(ctx context.Context, owner string) ([]models.Note, error) {
	query := `
		SELECT id, title, content, status, category_id, reminder_id, created_by, created_at
		FROM keepnote.notes
		WHERE created_by = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Status, &n.CategoryID, &n.ReminderID, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// Update overwrites the stored note record by id.
func (r *NoteRepository) Update(ctx context.Context, n *models.Note) error {
	query := `
		UPDATE keepnote.notes
		SET title = $2, content = $3, status = $4, category_id = $5, reminder_id = $6
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, n.ID, n.Title, n.Content, n.Status, n.CategoryID, n.ReminderID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("note %d: %w", n.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a note by id. Returns ErrNotFound when absent.
func (r *NoteRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM keepnote.notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return nil
}
