package models

import "time"

// Note is a single note, optionally linked to a category and a reminder.
type Note struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	CategoryID *int      `json:"category_id,omitempty"`
	ReminderID *int      `json:"reminder_id,omitempty"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
