package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"keepnote/internal/models"
)

// UserStore is the persistence contract the user service relies on.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// UserService handles registration and user profile management.
type UserService struct {
	store UserStore
	log   *logrus.Logger
}

func NewUserService(store UserStore, log *logrus.Logger) *UserService {
	return &UserService{store: store, log: log}
}

// Register creates a new user with a hashed password. A taken id surfaces
// as repository.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, user *models.User, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.ID)
	return user, nil
}

// Update overwrites the profile fields of an existing user. An empty
// password leaves the stored hash untouched.
func (s *UserService) Update(ctx context.Context, id string, in *models.User, password string) (*models.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Mobile = in.Mobile
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}
	s.log.Infof("User updated: %s", user.ID)
	return user, nil
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Infof("User deleted: %s", id)
	return nil
}

// GetByID retrieves a user by id.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.store.FindByID(ctx, id)
}
