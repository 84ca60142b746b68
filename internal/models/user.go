package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                       // Primary key
	Email        *string   `json:"email,omitempty" db:"email"`       // Optional email, unique when set
	AccessCode   *string   `json:"access_code,omitempty" db:"access_code"` // Code the user unlocked with, if any
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	Country      *string   `json:"country,omitempty" db:"country"`   // Detected country name
	Timezone     *string   `json:"timezone,omitempty" db:"timezone"` // Detected IANA timezone
	IsSubscribed bool      `json:"is_subscribed" db:"is_subscribed"` // True once a valid access code was consumed
}
