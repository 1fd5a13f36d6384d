package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors raised at the persistence boundary. Callers test them
// with errors.Is; expected absence and duplicate keys never surface as
// raw driver faults.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// Repository bundles per-entity database operations.
type Repository struct {
	Users      *UserRepository
	Categories *CategoryRepository
	Notes      *NoteRepository
	Reminders  *ReminderRepository
	Sessions   *SessionRepository
}

// NewRepository initializes a new repository over the given database.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:      &UserRepository{db: db},
		Categories: &CategoryRepository{db: db},
		Notes:      &NoteRepository{db: db},
		Reminders:  &ReminderRepository{db: db},
		Sessions:   &SessionRepository{db: db},
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
