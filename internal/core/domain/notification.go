package domain

import (
	"errors"
	"time"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is a message surfaced to one user. The read flag flips exactly
// once, via an explicit mark-as-read action.
type Notification struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Time        string    `json:"time"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Summary holds the aggregate counts rendered on the dashboard cards.
type Summary struct {
	StationsTotal  int64 `json:"stationsTotal"`
	StationsActive int64 `json:"stationsActive"`
	GensetsOnline  int   `json:"gensetsOnline"`
	GensetsWarning int   `json:"gensetsWarning"`
	GensetsOffline int   `json:"gensetsOffline"`
	UnreadTotal    int64 `json:"unreadTotal"`
}
