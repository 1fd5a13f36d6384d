package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keepnote/internal/models"
	"keepnote/internal/repository"
)

type fakeReminderStore struct {
	reminders map[int]models.Reminder
}

func (f *fakeReminderStore) FindDue(_ context.Context, now time.Time, limit int) ([]models.Reminder, error) {
	out := []models.Reminder{}
	for _, r := range f.reminders {
		if !r.Notified && r.RemindAt != nil && !r.RemindAt.After(now) {
			out = append(out, r)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeReminderStore) MarkNotified(_ context.Context, id int) error {
	r, ok := f.reminders[id]
	if !ok {
		return repository.ErrNotFound
	}
	r.Notified = true
	f.reminders[id] = r
	return nil
}

type fakeUserStore struct {
	users map[string]models.User
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

type fakeSender struct {
	sent []int
	err  error
}

func (f *fakeSender) SendReminderDue(_, _ string, rem *models.Reminder) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, rem.ID)
	return nil
}

func newTestDispatcher(reminders map[int]models.Reminder, sender *fakeSender) (*Dispatcher, *fakeReminderStore) {
	store := &fakeReminderStore{reminders: reminders}
	users := &fakeUserStore{users: map[string]models.User{
		"u1": {ID: "u1", Name: "Jane", Email: "jane@example.com"},
		"u2": {ID: "u2", Name: "Nomail"},
	}}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewDispatcher(store, users, sender, log), store
}

func TestDispatchDue_SendsAndMarks(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)
	sender := &fakeSender{}
	d, store := newTestDispatcher(map[int]models.Reminder{
		1: {ID: 1, Name: "due", RemindAt: &past, CreatedBy: "u1"},
		2: {ID: 2, Name: "future", RemindAt: &future, CreatedBy: "u1"},
		3: {ID: 3, Name: "done", RemindAt: &past, Notified: true, CreatedBy: "u1"},
		4: {ID: 4, Name: "unscheduled", CreatedBy: "u1"},
	}, sender)

	d.dispatchDue()

	assert.Equal(t, []int{1}, sender.sent)
	assert.True(t, store.reminders[1].Notified)
	assert.False(t, store.reminders[2].Notified)
	assert.False(t, store.reminders[4].Notified)
}

func TestDispatchDue_SendFailureRetriesNextTick(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	sender := &fakeSender{err: errors.New("smtp down")}
	d, store := newTestDispatcher(map[int]models.Reminder{
		1: {ID: 1, Name: "due", RemindAt: &past, CreatedBy: "u1"},
	}, sender)

	d.dispatchDue()
	assert.False(t, store.reminders[1].Notified)

	sender.err = nil
	d.dispatchDue()
	assert.True(t, store.reminders[1].Notified)
	assert.Equal(t, []int{1}, sender.sent)
}

func TestDispatchDue_OwnerWithoutEmailMarkedHandled(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	sender := &fakeSender{}
	d, store := newTestDispatcher(map[int]models.Reminder{
		1: {ID: 1, Name: "due", RemindAt: &past, CreatedBy: "u2"},
	}, sender)

	d.dispatchDue()

	assert.Empty(t, sender.sent)
	assert.True(t, store.reminders[1].Notified)
}

func TestDispatcher_StartRejectsBadInterval(t *testing.T) {
	d, _ := newTestDispatcher(map[int]models.Reminder{}, &fakeSender{})
	require.Error(t, d.Start(0))
}
