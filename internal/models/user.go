package models

import "time"

// User represents a registered user. The ID is chosen by the client at
// registration and anchors ownership of all other entities.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	PasswordHash string    `json:"-"` // Not serialized
	AddedAt      time.Time `json:"added_at"`
}
