// Package policy holds the pure authorization decisions. Nothing here touches
// storage; callers load whatever records a decision needs and pass them in.
// The acting identity is always an explicit argument, never ambient state.
package policy

import (
	"eventdesk/internal/domain/model"
)

// Actor is the authenticated identity a request acts as, resolved once from
// the bearer token and threaded through every handler and service call.
type Actor struct {
	ID   string
	Role model.Role
}

// CanListUsers grants the full user listing to admins only.
func CanListUsers(actor Actor) bool {
	switch actor.Role {
	case model.RoleAdmin:
		return true
	case model.RoleOrganizer, model.RoleAttendee:
		return false
	}
	return false
}

// CanAccessUser grants read/update/delete on a user record to its owner only.
// Admins get no special access to individual user records.
func CanAccessUser(actor Actor, userID string) bool {
	return actor.ID == userID
}

// CanCreateEvent grants event creation to organizers only.
func CanCreateEvent(actor Actor) bool {
	switch actor.Role {
	case model.RoleOrganizer:
		return true
	case model.RoleAdmin, model.RoleAttendee:
		return false
	}
	return false
}

// ScopeEventsToOwner reports whether event listings for the actor must be
// narrowed to events the actor owns. Organizers only ever see their own
// events; admins and attendees see all of them.
func ScopeEventsToOwner(actor Actor) bool {
	switch actor.Role {
	case model.RoleOrganizer:
		return true
	case model.RoleAdmin, model.RoleAttendee:
		return false
	}
	return false
}

// CanRegister grants event registration to attendees only.
func CanRegister(actor Actor) bool {
	switch actor.Role {
	case model.RoleAttendee:
		return true
	case model.RoleAdmin, model.RoleOrganizer:
		return false
	}
	return false
}
