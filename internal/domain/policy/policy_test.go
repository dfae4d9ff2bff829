package policy

import (
	"testing"

	"eventdesk/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestCanListUsers(t *testing.T) {
	assert.True(t, CanListUsers(Actor{ID: "u1", Role: model.RoleAdmin}))
	assert.False(t, CanListUsers(Actor{ID: "u2", Role: model.RoleOrganizer}))
	assert.False(t, CanListUsers(Actor{ID: "u3", Role: model.RoleAttendee}))
}

func TestCanAccessUser(t *testing.T) {
	actor := Actor{ID: "u1", Role: model.RoleAttendee}
	assert.True(t, CanAccessUser(actor, "u1"))
	assert.False(t, CanAccessUser(actor, "u2"))

	// Admins get no special access to individual user records.
	admin := Actor{ID: "a1", Role: model.RoleAdmin}
	assert.False(t, CanAccessUser(admin, "u1"))
}

func TestCanCreateEvent(t *testing.T) {
	assert.True(t, CanCreateEvent(Actor{ID: "o1", Role: model.RoleOrganizer}))
	assert.False(t, CanCreateEvent(Actor{ID: "a1", Role: model.RoleAdmin}))
	assert.False(t, CanCreateEvent(Actor{ID: "u1", Role: model.RoleAttendee}))
}

func TestScopeEventsToOwner(t *testing.T) {
	assert.True(t, ScopeEventsToOwner(Actor{ID: "o1", Role: model.RoleOrganizer}))
	assert.False(t, ScopeEventsToOwner(Actor{ID: "a1", Role: model.RoleAdmin}))
	assert.False(t, ScopeEventsToOwner(Actor{ID: "u1", Role: model.RoleAttendee}))
}

func TestCanRegister(t *testing.T) {
	assert.True(t, CanRegister(Actor{ID: "u1", Role: model.RoleAttendee}))
	assert.False(t, CanRegister(Actor{ID: "o1", Role: model.RoleOrganizer}))
	assert.False(t, CanRegister(Actor{ID: "a1", Role: model.RoleAdmin}))
}

func TestUnknownRoleIsDeniedEverything(t *testing.T) {
	actor := Actor{ID: "x", Role: model.Role("ghost")}
	assert.False(t, CanListUsers(actor))
	assert.False(t, CanCreateEvent(actor))
	assert.False(t, CanRegister(actor))
	assert.False(t, ScopeEventsToOwner(actor))
}
