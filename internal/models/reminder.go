package models

import "time"

// Reminder carries an optional due time. Notified is set once the due
// notification has been dispatched.
type Reminder struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	RemindAt    *time.Time `json:"remind_at,omitempty"`
	Notified    bool       `json:"notified"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}
