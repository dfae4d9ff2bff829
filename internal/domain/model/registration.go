package model

import (
	"time"
)

// Registration links an attendee to an event. RegisteredAt is assigned by the
// server at creation time and never updated; there is no update or delete
// surface for registrations.
type Registration struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user"`
	EventID      string    `json:"event"`
	RegisteredAt time.Time `json:"registered_at"`
}
