package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"keepnote/internal/models"
	"keepnote/internal/repository"
)

// ReminderStore is the persistence contract the reminder service relies on.
type ReminderStore interface {
	Create(ctx context.Context, rem *models.Reminder) error
	FindByID(ctx context.Context, id int) (*models.Reminder, error)
	FindByOwner(ctx context.Context, owner string) ([]models.Reminder, error)
	Update(ctx context.Context, rem *models.Reminder) error
	Delete(ctx context.Context, id int) error
}

// ReminderService wraps reminder persistence with owner scoping.
type ReminderService struct {
	store ReminderStore
	log   *logrus.Logger
}

func NewReminderService(store ReminderStore, log *logrus.Logger) *ReminderService {
	return &ReminderService{store: store, log: log}
}

// Create stores a new reminder owned by the authenticated user. A fresh
// reminder is never pre-notified, regardless of the payload.
func (s *ReminderService) Create(ctx context.Context, owner string, rem *models.Reminder) error {
	rem.CreatedBy = owner
	rem.Notified = false
	if err := s.store.Create(ctx, rem); err != nil {
		return err
	}
	s.log.Infof("Reminder created: %d by %s", rem.ID, owner)
	return nil
}

// Update overwrites the mutable fields of an owned reminder. Changing the
// due time re-arms the notification.
func (s *ReminderService) Update(ctx context.Context, owner string, id int, in *models.Reminder) (*models.Reminder, error) {
	rem, err := s.findOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	rem.Name = in.Name
	rem.Description = in.Description
	rem.Type = in.Type
	if in.RemindAt != nil && (rem.RemindAt == nil || !in.RemindAt.Equal(*rem.RemindAt)) {
		rem.Notified = false
	}
	rem.RemindAt = in.RemindAt
	if err := s.store.Update(ctx, rem); err != nil {
		return nil, err
	}
	s.log.Infof("Reminder updated: %d by %s", id, owner)
	return rem, nil
}

// Delete removes an owned reminder by id.
func (s *ReminderService) Delete(ctx context.Context, owner string, id int) error {
	if _, err := s.findOwned(ctx, owner, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Reminder deleted: %d by %s", id, owner)
	return nil
}

// GetByID retrieves an owned reminder by id.
func (s *ReminderService) GetByID(ctx context.Context, owner string, id int) (*models.Reminder, error) {
	return s.findOwned(ctx, owner, id)
}

// GetAllByOwner lists the owner's reminders; empty slice, never nil.
func (s *ReminderService) GetAllByOwner(ctx context.Context, owner string) ([]models.Reminder, error) {
	reminders, err := s.store.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}
	return reminders, nil
}

func (s *ReminderService) findOwned(ctx context.Context, owner string, id int) (*models.Reminder, error) {
	rem, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rem.CreatedBy != owner {
		return nil, repository.ErrNotFound
	}
	return rem, nil
}
