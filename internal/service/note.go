package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"keepnote/internal/models"
	"keepnote/internal/repository"
)

// NoteStore is the persistence contract the note service relies on.
type NoteStore interface {
	Create(ctx context.Context, n *models.Note) error
	FindByID(ctx context.Context, id int) (*models.Note, error)
	FindByOwner(ctx context.Context, owner string) ([]models.Note, error)
	Update(ctx context.Context, n *models.Note) error
	Delete(ctx context.Context, id int) error
}

// NoteService wraps note persistence with owner scoping.
type NoteService struct {
	store NoteStore
	log   *logrus.Logger
}

func NewNoteService(store NoteStore, log *logrus.Logger) *NoteService {
	return &NoteService{store: store, log: log}
}

// Create stores a new note owned by the authenticated user.
func (s *NoteService) Create(ctx context.Context, owner string, n *models.Note) error {
	n.CreatedBy = owner
	if err := s.store.Create(ctx, n); err != nil {
		return err
	}
	s.log.Infof("Note created: %d by %s", n.ID, owner)
	return nil
}

// Update overwrites the mutable fields of an owned note.
func (s *NoteService) Update(ctx context.Context, owner string, id int, in *models.Note) (*models.Note, error) {
	n, err := s.findOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	n.Title = in.Title
	n.Content = in.Content
	n.Status = in.Status
	n.CategoryID = in.CategoryID
	n.ReminderID = in.ReminderID
	if err := s.store.Update(ctx, n); err != nil {
		return nil, err
	}
	s.log.Infof("Note updated: %d by %s", id, owner)
	return n, nil
}

// Delete removes an owned note by id.
func (s *NoteService) Delete(ctx context.Context, owner string, id int) error {
	if _, err := s.findOwned(ctx, owner, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Note deleted: %d by %s", id, owner)
	return nil
}

// GetByID retrieves an owned note by id.
func (s *NoteService) GetByID(ctx context.Context, owner string, id int) (*models.Note, error) {
	return s.findOwned(ctx, owner, id)
}

// GetAllByOwner lists the owner's notes; empty slice, never nil.
func (s *NoteService) GetAllByOwner(ctx context.Context, owner string) ([]models.Note, error) {
	notes, err := s.store.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (s *NoteService) findOwned(ctx context.Context, owner string, id int) (*models.Note, error) {
	n, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.CreatedBy != owner {
		return nil, repository.ErrNotFound
	}
	return n, nil
}
