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
	"github.com/gosimple/slug"
)

type EventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,max=100"`
	Description string    `json:"description" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	Status      bool      `json:"status"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitempty,min=1"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Status      *bool      `json:"status,omitempty"`
}

// List narrows the result set for organizers to their own events. Nothing is
// denied here, only filtered.
func (s *EventService) List(ctx context.Context, actor policy.Actor) ([]model.Event, error) {
	if policy.ScopeEventsToOwner(actor) {
		return s.eventRepo.ListByOrganizer(ctx, actor.ID)
	}
	return s.eventRepo.List(ctx)
}

func (s *EventService) Create(ctx context.Context, actor policy.Actor, req CreateEventRequest) (*model.Event, error) {
	if !policy.CanCreateEvent(actor) {
		return nil, common.NewError(common.ErrForbidden, "You don't have permission to perform this action.")
	}
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	event := &model.Event{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      req.Status,
		OrganizerID: actor.ID, // the creator is the immutable owner
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// Get looks the event up inside the actor's own events, so a foreign event id
// and a non-existent one produce the same denial.
func (s *EventService) Get(ctx context.Context, actor policy.Actor, id string) (*model.Event, error) {
	return s.findOwned(ctx, actor, id)
}

func (s *EventService) Update(ctx context.Context, actor policy.Actor, id string, req UpdateEventRequest) (*model.Event, error) {
	event, err := s.findOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
		event.Slug = slug.Make(*req.Title)
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.Status != nil {
		event.Status = *req.Status
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// Delete removes the event and returns the deleted record so the handler can
// name it in the confirmation message.
func (s *EventService) Delete(ctx context.Context, actor policy.Actor, id string) (*model.Event, error) {
	event, err := s.findOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Delete(ctx, id, actor.ID); err != nil {
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}
	return event, nil
}

func (s *EventService) findOwned(ctx context.Context, actor policy.Actor, id string) (*model.Event, error) {
	event, err := s.eventRepo.FindByIDForOrganizer(ctx, id, actor.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Deliberately the same response for "not yours" and "does
			// not exist".
			return nil, common.NewError(common.ErrForbidden, "You don't have permission to perform this action.")
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}
	return event, nil
}
