package model

import (
	"time"
)

// Event is owned by exactly one organizer. The organizer reference never
// changes after creation.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      bool      `json:"status"` // published flag
	OrganizerID string    `json:"organizer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
