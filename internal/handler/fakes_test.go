package handler

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"keepnote/internal/models"
	"keepnote/internal/repository"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type memUserStore struct {
	users map[string]models.User
}

func (m *memUserStore) Create(_ context.Context, u *models.User) error {
	if _, ok := m.users[u.ID]; ok {
		return repository.ErrAlreadyExists
	}
	u.AddedAt = time.Now()
	m.users[u.ID] = *u
	return nil
}

func (m *memUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memUserStore) Update(_ context.Context, u *models.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	m.users[u.ID] = *u
	return nil
}

func (m *memUserStore) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type memSessionStore struct {
	sessions map[string]models.Session
}

func (m *memSessionStore) Create(_ context.Context, s *models.Session) error {
	s.CreatedAt = time.Now()
	m.sessions[s.ID] = *s
	return nil
}

func (m *memSessionStore) FindByID(_ context.Context, id string) (*models.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (m *memSessionStore) DeleteByID(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *memSessionStore) DeleteByUser(_ context.Context, userID string) error {
	for id, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, id)
		}
	}
	return nil
}

type memCategoryStore struct {
	categories map[int]models.Category
}

func (m *memCategoryStore) Create(_ context.Context, c *models.Category) error {
	if _, ok := m.categories[c.ID]; ok {
		return repository.ErrAlreadyExists
	}
	c.CreatedAt = time.Now()
	m.categories[c.ID] = *c
	return nil
}

func (m *memCategoryStore) FindByID(_ context.Context, id int) (*models.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (m *memCategoryStore) FindByOwner(_ context.Context, owner string) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range m.categories {
		if c.CreatedBy == owner {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCategoryStore) Update(_ context.Context, c *models.Category) error {
	if _, ok := m.categories[c.ID]; !ok {
		return repository.ErrNotFound
	}
	m.categories[c.ID] = *c
	return nil
}

func (m *memCategoryStore) Delete(_ context.Context, id int) error {
	if _, ok := m.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

type memNoteStore struct {
	notes map[int]models.Note
}

func (m *memNoteStore) Create(_ context.Context, n *models.Note) error {
	if _, ok := m.notes[n.ID]; ok {
		return repository.ErrAlreadyExists
	}
	n.CreatedAt = time.Now()
	m.notes[n.ID] = *n
	return nil
}

func (m *memNoteStore) FindByID(_ context.Context, id int) (*models.Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &n, nil
}

func (m *memNoteStore) FindByOwner(_ context.Context, owner string) ([]models.Note, error) {
	out := []models.Note{}
	for _, n := range m.notes {
		if n.CreatedBy == owner {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memNoteStore) Update(_ context.Context, n *models.Note) error {
	if _, ok := m.notes[n.ID]; !ok {
		return repository.ErrNotFound
	}
	m.notes[n.ID] = *n
	return nil
}

func (m *memNoteStore) Delete(_ context.Context, id int) error {
	if _, ok := m.notes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.notes, id)
	return nil
}

type memReminderStore struct {
	reminders map[int]models.Reminder
}

func (m *memReminderStore) Create(_ context.Context, r *models.Reminder) error {
	if _, ok := m.reminders[r.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.CreatedAt = time.Now()
	m.reminders[r.ID] = *r
	return nil
}

func (m *memReminderStore) FindByID(_ context.Context, id int) (*models.Reminder, error) {
	r, ok := m.reminders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (m *memReminderStore) FindByOwner(_ context.Context, owner string) ([]models.Reminder, error) {
	out := []models.Reminder{}
	for _, r := range m.reminders {
		if r.CreatedBy == owner {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memReminderStore) Update(_ context.Context, r *models.Reminder) error {
	if _, ok := m.reminders[r.ID]; !ok {
		return repository.ErrNotFound
	}
	m.reminders[r.ID] = *r
	return nil
}

func (m *memReminderStore) Delete(_ context.Context, id int) error {
	if _, ok := m.reminders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.reminders, id)
	return nil
}
