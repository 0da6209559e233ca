package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a directory account. Only used when the server runs with
// AUTH_MODE=local; in demo mode identities are synthesized at login and
// never touch this table.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
