package service

import (
	"context"
	"encoding/json"
	"testing"

	"eventdesk/internal/common"
	"eventdesk/internal/common/security"
	"eventdesk/internal/domain/model"
	"eventdesk/internal/domain/policy"
	"eventdesk/internal/domain/repository"
	"eventdesk/internal/platform/denylist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *AuthService, *repository.MemoryUserRepository) {
	t.Helper()
	userRepo := repository.NewMemoryUserRepository()
	authSvc := NewAuthService(userRepo, denylist.NewMemory())
	return NewUserService(userRepo), authSvc, userRepo
}

func TestListUsersAdminOnly(t *testing.T) {
	svc, authSvc, _ := newUserService(t)
	ctx := context.Background()

	signupUser(t, authSvc, "alice", model.RoleAttendee)
	signupUser(t, authSvc, "bob", model.RoleOrganizer)
	admin := signupUser(t, authSvc, "root", model.RoleAdmin)

	users, err := svc.List(ctx, policy.Actor{ID: admin.ID, Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, users, 3)
	for _, user := range users {
		assert.Empty(t, user.HashedPassword)
	}

	_, err = svc.List(ctx, policy.Actor{ID: "whoever", Role: model.RoleOrganizer})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.Equal(t, "You don't have permission to access this resource.", err.Error())
}

func TestGetUserSelfOnly(t *testing.T) {
	svc, authSvc, _ := newUserService(t)
	ctx := context.Background()

	alice := signupUser(t, authSvc, "alice", model.RoleAttendee)
	bob := signupUser(t, authSvc, "bob", model.RoleAttendee)

	got, err := svc.Get(ctx, policy.Actor{ID: alice.ID, Role: model.RoleAttendee}, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Empty(t, got.HashedPassword)

	// The JSON shape never carries the credential either.
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	_, err = svc.Get(ctx, policy.Actor{ID: bob.ID, Role: model.RoleAttendee}, alice.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)

	// Admins are not granted access to other users' records.
	_, err = svc.Get(ctx, policy.Actor{ID: "admin-id", Role: model.RoleAdmin}, alice.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestUpdateUserSelfOnly(t *testing.T) {
	svc, authSvc, userRepo := newUserService(t)
	ctx := context.Background()

	alice := signupUser(t, authSvc, "alice", model.RoleAttendee)
	actor := policy.Actor{ID: alice.ID, Role: model.RoleAttendee}

	newName := "alice2"
	newPassword := "fresh-secret"
	updated, err := svc.Update(ctx, actor, alice.ID, UpdateUserRequest{Username: &newName, Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, model.RoleAttendee, updated.Role, "role is immutable")

	stored, err := userRepo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, security.CheckPasswordHash("fresh-secret", stored.HashedPassword))

	_, err = svc.Update(ctx, policy.Actor{ID: "someone-else", Role: model.RoleAttendee}, alice.ID, UpdateUserRequest{Username: &newName})
	assert.ErrorIs(t, err, common.ErrForbidden)
}

func TestUpdateUserDuplicateUsername(t *testing.T) {
	svc, authSvc, _ := newUserService(t)
	ctx := context.Background()

	signupUser(t, authSvc, "alice", model.RoleAttendee)
	bob := signupUser(t, authSvc, "bob", model.RoleAttendee)

	taken := "alice"
	_, err := svc.Update(ctx, policy.Actor{ID: bob.ID, Role: model.RoleAttendee}, bob.ID, UpdateUserRequest{Username: &taken})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestDeleteUserSelfOnly(t *testing.T) {
	svc, authSvc, userRepo := newUserService(t)
	ctx := context.Background()

	alice := signupUser(t, authSvc, "alice", model.RoleAttendee)

	_, err := svc.Delete(ctx, policy.Actor{ID: "intruder", Role: model.RoleAttendee}, alice.ID)
	assert.ErrorIs(t, err, common.ErrForbidden)

	deleted, err := svc.Delete(ctx, policy.Actor{ID: alice.ID, Role: model.RoleAttendee}, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", deleted.Username)

	_, err = userRepo.FindByID(ctx, alice.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
