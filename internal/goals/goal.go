package goals

import "time"

// Goal is a user-authored to-do item. OwnerID is the Telegram user id and
// is the only authorization boundary: every query filters by it.
type Goal struct {
	ID        int64
	OwnerID   int64
	Text      string
	IsDone    bool
	CreatedAt time.Time
}
