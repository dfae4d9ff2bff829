package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventdesk/internal/common"
	"eventdesk/internal/domain/model"
	"eventdesk/internal/domain/policy"
	"eventdesk/internal/domain/repository"

	"github.com/google/uuid"
)

type RegistrationService struct {
	registrationRepo repository.RegistrationRepository
	eventRepo        repository.EventRepository
}

func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	eventRepo repository.EventRepository,
) *RegistrationService {
	return &RegistrationService{registrationRepo: registrationRepo, eventRepo: eventRepo}
}

type RegisterRequest struct {
	EventID string `json:"event"`
}

// Register creates a registration naming the actor as the attending user.
// A missing event field is a validation failure, a role mismatch is a
// permission failure, and a nonexistent event is again a validation failure.
// The role check runs before the existence lookup so non-attendees learn
// nothing about which event ids exist.
func (s *RegistrationService) Register(ctx context.Context, actor policy.Actor, req RegisterRequest) (*model.Registration, error) {
	if req.EventID == "" {
		return nil, common.NewError(common.ErrValidation, "Event field is required.")
	}

	if !policy.CanRegister(actor) {
		return nil, common.NewError(common.ErrForbidden, "Only attendee users can register events.")
	}

	event, err := s.eventRepo.FindByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrValidation, "Event not found.")
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	registration := &model.Registration{
		ID:           uuid.NewString(),
		UserID:       actor.ID,
		EventID:      event.ID,
		RegisteredAt: time.Now(), // server-assigned, never client-supplied
	}
	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	return registration, nil
}
