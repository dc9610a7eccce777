package storage

import "time"

// Event is one /ask turn: the user's question and what the assistant
// replied. Failed marks turns where the completion call errored and the
// user got the fallback answer.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    int64     `json:"user_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Failed    bool      `json:"failed,omitempty"`
}

// Recorder abstracts persistence of ask events. Implementations must be
// safe for concurrent use; LoadInteractions returns events in
// chronological order.
type Recorder interface {
	AppendInteraction(event Event) error
	LoadInteractions() ([]Event, error)
}
