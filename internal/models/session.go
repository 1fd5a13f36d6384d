package models

import "time"

// Session is a server-side login session, carried to the client as an
// opaque cookie holding the session ID.
type Session struct {
	ID        string    `json:"-"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
