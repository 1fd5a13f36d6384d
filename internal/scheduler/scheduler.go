package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"keepnote/internal/models"
)

// dueBatchLimit caps how many reminders a single tick processes.
const dueBatchLimit = 100

// ReminderStore is the subset of reminder persistence the dispatcher needs.
type ReminderStore interface {
	FindDue(ctx context.Context, now time.Time, limit int) ([]models.Reminder, error)
	MarkNotified(ctx context.Context, id int) error
}

// UserStore resolves reminder owners to their profiles.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Sender delivers the due notification.
type Sender interface {
	SendReminderDue(to, name string, rem *models.Reminder) error
}

// Dispatcher periodically delivers due reminder notifications. A reminder
// stays unnotified until a send succeeds, so failures retry on the next
// tick.
type Dispatcher struct {
	cron      *cron.Cron
	reminders ReminderStore
	users     UserStore
	sender    Sender
	log       *logrus.Logger
}

func NewDispatcher(reminders ReminderStore, users UserStore, sender Sender, log *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		cron:      cron.New(),
		reminders: reminders,
		users:     users,
		sender:    sender,
		log:       log,
	}
}

// Start schedules the dispatch loop at the given interval and starts it.
func (d *Dispatcher) Start(interval time.Duration) error {
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if _, err := d.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), d.dispatchDue); err != nil {
		return fmt.Errorf("schedule dispatch: %w", err)
	}
	d.cron.Start()
	d.log.Infof("Reminder dispatcher started, interval %s", interval)
	return nil
}

// Stop halts the loop and waits for a running tick to finish.
func (d *Dispatcher) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
}

func (d *Dispatcher) dispatchDue() {
	ctx := context.Background()
	due, err := d.reminders.FindDue(ctx, time.Now(), dueBatchLimit)
	if err != nil {
		d.log.Errorf("Failed to load due reminders: %v", err)
		return
	}
	for i := range due {
		rem := &due[i]
		user, err := d.users.FindByID(ctx, rem.CreatedBy)
		if err != nil {
			d.log.Errorf("Failed to load owner of reminder %d: %v", rem.ID, err)
			continue
		}
		if user.Email == "" {
			// Nowhere to deliver; mark handled so the row is not
			// re-selected forever.
			d.log.Warnf("Reminder %d owner %s has no email", rem.ID, user.ID)
		} else if err := d.sender.SendReminderDue(user.Email, user.Name, rem); err != nil {
			continue
		}
		if err := d.reminders.MarkNotified(ctx, rem.ID); err != nil {
			d.log.Errorf("Failed to mark reminder %d notified: %v", rem.ID, err)
		}
	}
}
