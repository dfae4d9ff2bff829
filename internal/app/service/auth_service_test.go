package service

import (
	"context"
	"os"
	"testing"

	"eventdesk/internal/common"
	"eventdesk/internal/common/security"
	"eventdesk/internal/domain/model"
	"eventdesk/internal/domain/repository"
	"eventdesk/internal/platform/config"
	"eventdesk/internal/platform/denylist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.Load()
	security.InitJWT()
	os.Exit(m.Run())
}

func newAuthService(t *testing.T) (*AuthService, *repository.MemoryUserRepository) {
	t.Helper()
	userRepo := repository.NewMemoryUserRepository()
	return NewAuthService(userRepo, denylist.NewMemory()), userRepo
}

func signupUser(t *testing.T, svc *AuthService, username string, role model.Role) *model.User {
	t.Helper()
	user, err := svc.Signup(context.Background(), SignupRequest{
		Username: username,
		Password: "correct-horse",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user := signupUser(t, svc, "alice", model.RoleAttendee)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, model.RoleAttendee, user.Role)
	assert.Empty(t, user.HashedPassword, "password must never be returned")

	pair, err := svc.Login(ctx, LoginRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// The access token identifies the user without any store lookup.
	claims, err := security.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleAttendee, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	signupUser(t, svc, "alice", model.RoleAttendee)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "Unable to log in with provided credentials.", err.Error())
}

func TestLoginUnknownUserSameMessage(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "nobody", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, "Unable to log in with provided credentials.", err.Error())
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, userRepo := newAuthService(t)
	user := signupUser(t, svc, "carol", model.RoleOrganizer)

	stored, err := userRepo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	stored.Active = false
	// The memory repo's Update only touches username/password, so flip the
	// flag by recreating the record.
	require.NoError(t, userRepo.Delete(context.Background(), user.ID))
	require.NoError(t, userRepo.Create(context.Background(), stored))

	_, err = svc.Login(context.Background(), LoginRequest{Username: "carol", Password: "correct-horse"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Equal(t, "User account is disabled.", err.Error())
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	signupUser(t, svc, "alice", model.RoleAttendee)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Username: "alice",
		Password: "another-pass",
		Role:     model.RoleOrganizer,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestSignupUnknownRole(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Username: "mallory",
		Password: "pass-pass",
		Role:     model.Role("superuser"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	signupUser(t, svc, "alice", model.RoleAttendee)

	pair, err := svc.Login(ctx, LoginRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	// Refresh works before logout.
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, pair.RefreshToken))

	// The revoked token can no longer mint a new pair.
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLogoutIsNotIdempotent(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	signupUser(t, svc, "alice", model.RoleAttendee)

	pair, err := svc.Login(ctx, LoginRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, pair.RefreshToken))

	err = svc.Logout(ctx, pair.RefreshToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrBadRequest)
	assert.Equal(t, "Refresh token has already been revoked.", err.Error())
}

func TestLogoutDistinguishesFailureModes(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	err := svc.Logout(ctx, "")
	require.Error(t, err)
	assert.Equal(t, "Refresh token is required.", err.Error())

	err = svc.Logout(ctx, "garbage.token.value")
	require.Error(t, err)
	assert.Equal(t, "Refresh token is malformed.", err.Error())
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	signupUser(t, svc, "alice", model.RoleAttendee)

	pair, err := svc.Login(ctx, LoginRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, pair.AccessToken)
	require.Error(t, err)
	assert.Equal(t, "Refresh token is malformed.", err.Error())
}
