package service

import (
	"context"
	"fmt"

	"eventdesk/internal/domain/repository"
)

// StatsService serves the public aggregate counts; no authentication is
// involved anywhere on this path.
type StatsService struct {
	eventRepo        repository.EventRepository
	registrationRepo repository.RegistrationRepository
}

func NewStatsService(
	eventRepo repository.EventRepository,
	registrationRepo repository.RegistrationRepository,
) *StatsService {
	return &StatsService{eventRepo: eventRepo, registrationRepo: registrationRepo}
}

type CountsResponse struct {
	EventCount        int `json:"event_count"`
	RegistrationCount int `json:"registration_count"`
}

func (s *StatsService) Counts(ctx context.Context) (*CountsResponse, error) {
	eventCount, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	registrationCount, err := s.registrationRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}
	return &CountsResponse{EventCount: eventCount, RegistrationCount: registrationCount}, nil
}
