package service

import (
	"context"
	"testing"

	"eventdesk/internal/common"
	"eventdesk/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistrationService(t *testing.T) (*RegistrationService, *EventService, *repository.MemoryRegistrationRepository) {
	t.Helper()
	eventRepo := repository.NewMemoryEventRepository()
	registrationRepo := repository.NewMemoryRegistrationRepository()
	return NewRegistrationService(registrationRepo, eventRepo), NewEventService(eventRepo), registrationRepo
}

func TestRegisterAttendee(t *testing.T) {
	svc, eventSvc, _ := newRegistrationService(t)
	ctx := context.Background()

	event := createEvent(t, eventSvc, organizerActor, "Go Meetup")

	registration, err := svc.Register(ctx, attendeeActor, RegisterRequest{EventID: event.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, registration.ID)
	assert.Equal(t, attendeeActor.ID, registration.UserID)
	assert.Equal(t, event.ID, registration.EventID)
	assert.False(t, registration.RegisteredAt.IsZero(), "registered_at is server-assigned")
}

func TestRegisterMissingEventField(t *testing.T) {
	svc, _, _ := newRegistrationService(t)

	_, err := svc.Register(context.Background(), attendeeActor, RegisterRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "Event field is required.", err.Error())
}

func TestRegisterNonexistentEvent(t *testing.T) {
	svc, _, _ := newRegistrationService(t)

	_, err := svc.Register(context.Background(), attendeeActor, RegisterRequest{EventID: "no-such-event"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation, "a missing event is a validation failure, not a permission one")
	assert.Equal(t, "Event not found.", err.Error())
}

func TestRegisterNonAttendeeDenied(t *testing.T) {
	svc, eventSvc, _ := newRegistrationService(t)
	ctx := context.Background()

	event := createEvent(t, eventSvc, organizerActor, "Go Meetup")

	// Denied regardless of whether the named event exists.
	_, err := svc.Register(ctx, organizerActor, RegisterRequest{EventID: event.ID})
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = svc.Register(ctx, adminActor, RegisterRequest{EventID: "no-such-event"})
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestCountsStartAtZero(t *testing.T) {
	_, eventSvc, registrationRepo := newRegistrationService(t)

	statsSvc := NewStatsService(eventSvc.eventRepo, registrationRepo)
	counts, err := statsSvc.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, counts.EventCount)
	assert.Equal(t, 0, counts.RegistrationCount)
}

func TestCountsTrackCreates(t *testing.T) {
	svc, eventSvc, registrationRepo := newRegistrationService(t)
	ctx := context.Background()

	event := createEvent(t, eventSvc, organizerActor, "Go Meetup")
	_, err := svc.Register(ctx, attendeeActor, RegisterRequest{EventID: event.ID})
	require.NoError(t, err)

	statsSvc := NewStatsService(eventSvc.eventRepo, registrationRepo)
	counts, err := statsSvc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.EventCount)
	assert.Equal(t, 1, counts.RegistrationCount)
}
