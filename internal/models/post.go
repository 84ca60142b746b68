package models

import (
	"time"

	"github.com/google/uuid"
)

// PostDB represents a generated post record
type PostDB struct {
	PostID    uuid.UUID `json:"id" db:"id"`                 // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	Content   string    `json:"content" db:"content"`       // Final post text
	WordCount int       `json:"word_count" db:"word_count"` // Words in Content
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Generation timestamp
	Liked     bool      `json:"liked" db:"liked"`           // Latched on first like
	Shared    bool      `json:"shared" db:"shared"`         // Latched on first share
}
