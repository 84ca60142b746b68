package models

// Event represents an analytics event published to Kafka, including the user, post, and event kind.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID    string `json:"user_id"`   // UserID is the identifier of the user who triggered the event.
	PostID    string `json:"post_id"`   // PostID is the identifier of the related post, if any.
	Kind      string `json:"kind"`      // Kind describes the event type, e.g. "generation", "like", or "share".
	WordCount int    `json:"word_count,omitempty"` // WordCount is set for generation events.
}
