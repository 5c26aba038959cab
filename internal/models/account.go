package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user. Username and email are each unique across
// all accounts; the accounts table enforces both with UNIQUE constraints.
// Accounts are created once on sign-up and never updated by this service.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never return the hash in JSON
	CreatedAt    time.Time `json:"created_at"`
}
