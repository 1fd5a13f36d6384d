package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"keepnote/internal/models"
	"keepnote/internal/repository"
)

// CategoryStore is the persistence contract the category service relies on.
type CategoryStore interface {
	Create(ctx context.Context, c *models.Category) error
	FindByID(ctx context.Context, id int) (*models.Category, error)
	FindByOwner(ctx context.Context, owner string) ([]models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int) error
}

// CategoryService wraps category persistence with owner scoping. Entities
// owned by another user behave as absent.
type CategoryService struct {
	store CategoryStore
	log   *logrus.Logger
}

func NewCategoryService(store CategoryStore, log *logrus.Logger) *CategoryService {
	return &CategoryService{store: store, log: log}
}

// Create stores a new category owned by the authenticated user. The owner
// always comes from the session, never from the payload.
func (s *CategoryService) Create(ctx context.Context, owner string, c *models.Category) error {
	c.CreatedBy = owner
	if err := s.store.Create(ctx, c); err != nil {
		return err
	}
	s.log.Infof("Category created: %d by %s", c.ID, owner)
	return nil
}

// Update overwrites the mutable fields of an owned category.
func (s *CategoryService) Update(ctx context.Context, owner string, id int, in *models.Category) (*models.Category, error) {
	c, err := s.findOwned(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Description = in.Description
	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}
	s.log.Infof("Category updated: %d by %s", id, owner)
	return c, nil
}

// Delete removes an owned category by id.
func (s *CategoryService) Delete(ctx context.Context, owner string, id int) error {
	if _, err := s.findOwned(ctx, owner, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Category deleted: %d by %s", id, owner)
	return nil
}

// GetByID retrieves an owned category by id.
func (s *CategoryService) GetByID(ctx context.Context, owner string, id int) (*models.Category, error) {
	return s.findOwned(ctx, owner, id)
}

// GetAllByOwner lists the owner's categories; empty slice, never nil.
func (s *CategoryService) GetAllByOwner(ctx context.Context, owner string) ([]models.Category, error) {
	categories, err := s.store.FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *CategoryService) findOwned(ctx context.Context, owner string, id int) (*models.Category, error) {
	c, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.CreatedBy != owner {
		return nil, repository.ErrNotFound
	}
	return c, nil
}
