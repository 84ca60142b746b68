package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessCodeDB represents a pre-provisioned access code record
type AccessCodeDB struct {
	Code      string     `json:"code" db:"code"`             // Primary key, 10-character alphanumeric
	IsUsed    bool       `json:"is_used" db:"is_used"`       // True once consumed (persistent mode only)
	UsedBy    *uuid.UUID `json:"used_by,omitempty" db:"used_by"` // User who consumed the code
	CreatedAt time.Time  `json:"created_at" db:"created_at"` // Provisioning timestamp
}
