package domain

import (
	"time"

	"github.com/google/uuid"
)

// Store is the tenant boundary. Every catalog entity belongs to exactly one
// store, and every mutation is gated on the acting user owning that store.
type Store struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
