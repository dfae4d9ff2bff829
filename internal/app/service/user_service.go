package service

import (
	"context"
	"errors"
	"fmt"

	"eventdesk/internal/common"
	"eventdesk/internal/common/security"
	"eventdesk/internal/domain/model"
	"eventdesk/internal/domain/policy"
	"eventdesk/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=150"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,max=128"`
}

func (s *UserService) List(ctx context.Context, actor policy.Actor) ([]model.User, error) {
	if !policy.CanListUsers(actor) {
		return nil, common.NewError(common.ErrForbidden, "You don't have permission to access this resource.")
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		users[i].HashedPassword = ""
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, actor policy.Actor, id string) (*model.User, error) {
	if !policy.CanAccessUser(actor, id) {
		return nil, common.NewError(common.ErrForbidden, "You don't have permission to perform this action.")
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}

func (s *UserService) Update(ctx context.Context, actor policy.Actor, id string, req UpdateUserRequest) (*model.User, error) {
	if !policy.CanAccessUser(actor, id) {
		return nil, common.NewError(common.ErrForbidden, "You don't have permission to perform this action.")
	}
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Password != nil {
		hashedPassword, err := security.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.NewError(common.ErrConflict, "A user with that username already exists.")
		}
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// Delete removes the user and returns the deleted record so the handler can
// name it in the confirmation message.
func (s *UserService) Delete(ctx context.Context, actor policy.Actor, id string) (*model.User, error) {
	if !policy.CanAccessUser(actor, id) {
		return nil, common.NewError(common.ErrForbidden, "You don't have permission to perform this action.")
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}
