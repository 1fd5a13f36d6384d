package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"keepnote/internal/models"
)

// ReminderRepository handles CRUD for reminders plus the due-reminder
// queries used by the dispatcher.
type ReminderRepository struct {
	db *sql.DB
}

// Create inserts a new reminder with its client-supplied id.
func (r *ReminderRepository) Create(ctx context.Context, rem *models.Reminder) error {
	query := `
		INSERT INTO keepnote.reminders (id, name, description, reminder_type, remind_at, notified, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query,
		rem.ID, rem.Name, rem.Description, rem.Type, rem.RemindAt, rem.CreatedBy).
		Scan(&rem.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("reminder %d: %w", rem.ID, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// FindByID retrieves a reminder by id. Returns ErrNotFound when absent.
func (r *ReminderRepository) FindByID(ctx context.Context, id int) (*models.Reminder, error) {
	rem := &models.Reminder{}
	query := `
		SELECT id, name, description, reminder_type, remind_at, notified, created_by, created_at
		FROM keepnote.reminders
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rem.ID, &rem.Name, &rem.Description, &rem.Type, &rem.RemindAt, &rem.Notified, &rem.CreatedBy, &rem.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("reminder %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find reminder: %w", err)
	}
	return rem, nil
}

// FindByOwner lists the reminders created by the given user, in insertion order.
func (r *ReminderRepository) FindByOwner(ctx context.Context, owner string) ([]models.Reminder, error) {
	query := `
		SELECT id, name, description, reminder_type, remind_at, notified, created_by, created_at
		FROM keepnote.reminders
		WHERE created_by = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(&rem.ID, &rem.Name, &rem.Description, &rem.Type, &rem.RemindAt, &rem.Notified, &rem.CreatedBy, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

// FindDue lists reminders whose due time has passed and that have not
// been notified yet, oldest first.
func (r *ReminderRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]models.Reminder, error) {
	query := `
		SELECT id, name, description, reminder_type, remind_at, notified, created_by, created_at
		FROM keepnote.reminders
		WHERE NOT notified AND remind_at IS NOT NULL AND remind_at <= $1
		ORDER BY remind_at
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	defer rows.Close()

	reminders := []models.Reminder{}
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(&rem.ID, &rem.Name, &rem.Description, &rem.Type, &rem.RemindAt, &rem.Notified, &rem.CreatedBy, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	return reminders, nil
}

// MarkNotified records that the due notification for a reminder was sent.
func (r *ReminderRepository) MarkNotified(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE keepnote.reminders SET notified = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder notified: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark reminder notified: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("reminder %d: %w", id, ErrNotFound)
	}
	return nil
}

// Update overwrites the stored reminder record by id.
func (r *ReminderRepository) Update(ctx context.Context, rem *models.Reminder) error {
	query := `
		UPDATE keepnote.reminders
		SET name = $2, description = $3, reminder_type = $4, remind_at = $5, notified = $6
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, rem.ID, rem.Name, rem.Description, rem.Type, rem.RemindAt, rem.Notified)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("reminder %d: %w", rem.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a reminder by id. Returns ErrNotFound when absent.
func (r *ReminderRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM keepnote.reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("reminder %d: %w", id, ErrNotFound)
	}
	return nil
}
