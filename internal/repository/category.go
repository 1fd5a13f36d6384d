package repository

import (
	"context"
	"database/sql"
	"fmt"

	"keepnote/internal/models"
)

// CategoryRepository handles CRUD for categories.
type CategoryRepository struct {
	db *sql.DB
}

// Create inserts a new category with its client-supplied id.
func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	query := `
		INSERT INTO keepnote.categories (id, name, description, created_by, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, c.ID, c.Name, c.Description, c.CreatedBy).
		Scan(&c.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("category %d: %w", c.ID, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// FindByID retrieves a category by id. Returns ErrNotFound when absent.
func (r *CategoryRepository) FindByID(ctx context.Context, id int) (*models.Category, error) {
	c := &models.Category{}
	query := `
		SELECT id, name, description, created_by, created_at
		FROM keepnote.categories
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedBy, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return c, nil
}

// FindByOwner lists the categories created by the given user, in insertion order.
func (r *CategoryRepository) FindByOwner(ctx context.Context, owner string) ([]models.Category, error) {
	query := `
		SELECT id, name, description, created_by, created_at
		FROM keepnote.categories
		WHERE created_by = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Update overwrites the stored category record by id.
func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	query := `
		UPDATE keepnote.categories
		SET name = $2, description = $3
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Description)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category %d: %w", c.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a category by id. Returns ErrNotFound when absent.
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM keepnote.categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return nil
}
