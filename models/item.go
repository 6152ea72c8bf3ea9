package models

import "time"

// Display statuses derived from an item's done flag and due date.
const (
	StatusDone    = "done"
	StatusOld     = "old"
	StatusPending = "pending"
)

// Item is a single entry in a user's to-do list.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	Done        bool      `json:"done"`
	UserID      string    `json:"user"`
}

// NewItem returns an item owned by userID with every other field at its default.
func NewItem(userID string) *Item {
	return &Item{UserID: userID}
}

// OwnedBy reports whether userID owns the item.
func (i *Item) OwnedBy(userID string) bool {
	return i != nil && userID != "" && i.UserID == userID
}

// Status classifies the item for display relative to now.
func (i *Item) Status(now time.Time) string {
	switch {
	case i.Done:
		return StatusDone
	case i.Date.Before(now):
		return StatusOld
	default:
		return StatusPending
	}
}

// NormalizeTime converts t to UTC at millisecond precision, the resolution
// every store backend can round-trip.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
