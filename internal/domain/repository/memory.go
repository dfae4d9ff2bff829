package repository

import (
	"context"
	"sync"
	"time"

	"eventdesk/internal/common"
	"eventdesk/internal/domain/model"
)

// In-memory implementations of the store interfaces. Listing preserves
// insertion order like the postgres implementations do. Used by the unit
// tests; they carry the same error contract as the pg repositories.

type MemoryUserRepository struct {
	mu    sync.Mutex
	users []*model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return common.Errorf("user with given username already exists: %w", common.ErrConflict)
		}
	}
	clone := *user
	now := time.Now()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	r.users = append(r.users, &clone)
	user.CreatedAt = clone.CreatedAt
	user.UpdatedAt = clone.UpdatedAt
	return nil
}

func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryUserRepository) List(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *MemoryUserRepository) Update(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.ID != user.ID && existing.Username == user.Username {
			return common.Errorf("user with given username already exists: %w", common.ErrConflict)
		}
	}
	for _, existing := range r.users {
		if existing.ID == user.ID {
			existing.Username = user.Username
			existing.HashedPassword = user.HashedPassword
			existing.UpdatedAt = time.Now()
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *MemoryUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.users {
		if existing.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

type MemoryEventRepository struct {
	mu     sync.Mutex
	events []*model.Event
}

func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{}
}

func (r *MemoryEventRepository) Create(ctx context.Context, event *model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *event
	now := time.Now()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	r.events = append(r.events, &clone)
	event.CreatedAt = clone.CreatedAt
	event.UpdatedAt = clone.UpdatedAt
	return nil
}

func (r *MemoryEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, event := range r.events {
		if event.ID == id {
			clone := *event
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryEventRepository) FindByIDForOrganizer(ctx context.Context, id, organizerID string) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, event := range r.events {
		if event.ID == id && event.OrganizerID == organizerID {
			clone := *event
			return &clone, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryEventRepository) List(ctx context.Context) ([]model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]model.Event, 0, len(r.events))
	for _, event := range r.events {
		events = append(events, *event)
	}
	return events, nil
}

func (r *MemoryEventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var events []model.Event
	for _, event := range r.events {
		if event.OrganizerID == organizerID {
			events = append(events, *event)
		}
	}
	return events, nil
}

func (r *MemoryEventRepository) Update(ctx context.Context, event *model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.events {
		if existing.ID == event.ID && existing.OrganizerID == event.OrganizerID {
			existing.Title = event.Title
			existing.Slug = event.Slug
			existing.Description = event.Description
			existing.StartTime = event.StartTime
			existing.EndTime = event.EndTime
			existing.Status = event.Status
			existing.UpdatedAt = time.Now()
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *MemoryEventRepository) Delete(ctx context.Context, id, organizerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.events {
		if existing.ID == id && existing.OrganizerID == organizerID {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *MemoryEventRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events), nil
}

type MemoryRegistrationRepository struct {
	mu            sync.Mutex
	registrations []*model.Registration
}

func NewMemoryRegistrationRepository() *MemoryRegistrationRepository {
	return &MemoryRegistrationRepository{}
}

func (r *MemoryRegistrationRepository) Create(ctx context.Context, registration *model.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *registration
	r.registrations = append(r.registrations, &clone)
	return nil
}

func (r *MemoryRegistrationRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.registrations), nil
}
