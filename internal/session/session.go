package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"keepnote/internal/models"
	"keepnote/internal/repository"
)

// CookieName is the cookie carrying the opaque session id.
const CookieName = "session_id"

var (
	ErrInvalidLogin = errors.New("invalid user id or password")
	ErrNoSession    = errors.New("session not found")
)

// UserStore is the subset of user persistence the manager needs.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Store persists login sessions.
type Store interface {
	Create(ctx context.Context, s *models.Session) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
}

// Manager owns the session lifecycle: login, logout and cookie resolution.
type Manager struct {
	users    UserStore
	sessions Store
	lifetime time.Duration
	log      *logrus.Logger
}

func NewManager(users UserStore, sessions Store, lifetime time.Duration, log *logrus.Logger) *Manager {
	return &Manager{users: users, sessions: sessions, lifetime: lifetime, log: log}
}

// Login verifies the credentials and creates a fresh session, replacing
// any stale sessions of the same user.
func (m *Manager) Login(ctx context.Context, userID, password string) (*models.Session, *models.User, error) {
	user, err := m.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidLogin
		}
		return nil, nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidLogin
	}

	if err := m.sessions.DeleteByUser(ctx, user.ID); err != nil {
		return nil, nil, err
	}
	s := &models.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(m.lifetime),
	}
	if err := m.sessions.Create(ctx, s); err != nil {
		return nil, nil, err
	}

	m.log.Infof("User logged in: %s", user.ID)
	return s, user, nil
}

// Logout removes the session. Unknown session ids are ignored.
func (m *Manager) Logout(ctx context.Context, sid string) error {
	return m.sessions.DeleteByID(ctx, sid)
}

// Resolve maps a session id to the owning user id. Expired or unknown
// sessions yield ErrNoSession.
func (m *Manager) Resolve(ctx context.Context, sid string) (string, error) {
	s, err := m.sessions.FindByID(ctx, sid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNoSession
		}
		return "", err
	}
	if !s.ExpiresAt.After(time.Now()) {
		// Expired rows are garbage; drop eagerly.
		_ = m.sessions.DeleteByID(ctx, sid)
		return "", ErrNoSession
	}
	return s.UserID, nil
}

type ctxKeyUserID struct{}

// WithUserID injects the authenticated user id into the context. Only the
// session middleware should call this.
func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID{}, uid)
}

// UserID returns the authenticated user id, or false for anonymous requests.
func UserID(ctx context.Context) (string, bool) {
	uid, _ := ctx.Value(ctxKeyUserID{}).(string)
	return uid, uid != ""
}
