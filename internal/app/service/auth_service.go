package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventdesk/internal/common"
	"eventdesk/internal/common/security"
	"eventdesk/internal/domain/model"
	"eventdesk/internal/domain/repository"
	"eventdesk/internal/platform/denylist"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
	revoked  denylist.Denylist
}

func NewAuthService(userRepo repository.UserRepository, revoked denylist.Denylist) *AuthService {
	return &AuthService{userRepo: userRepo, revoked: revoked}
}

type SignupRequest struct {
	Username string     `json:"username" validate:"required,min=1,max=150"`
	Password string     `json:"password" validate:"required,min=1,max=128"`
	Role     model.Role `json:"role" validate:"required,oneof=admin organizer attendee"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, err
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		HashedPassword: hashedPassword,
		Role:           req.Role,
		Active:         true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.NewError(common.ErrConflict, "A user with that username already exists.")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.HashedPassword = "" // Clear password before returning
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.NewError(common.ErrValidation, "Must include 'username' and 'password'.")
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Same message as a wrong password, existence is not leaked.
			return nil, common.NewError(common.ErrValidation, "Unable to log in with provided credentials.")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.NewError(common.ErrValidation, "Unable to log in with provided credentials.")
	}

	if !user.Active {
		return nil, common.NewError(common.ErrValidation, "User account is disabled.")
	}

	return s.issuePair(user)
}

// Refresh exchanges a live refresh token for a fresh pair. A revoked token is
// rejected even though it still parses.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.parseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revoked.Contains(ctx, claims.TokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		return nil, common.NewError(common.ErrUnauthorized, "Refresh token has been revoked.")
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NewError(common.ErrUnauthorized, "User no longer exists.")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return s.issuePair(user)
}

// Logout revokes the refresh token. Malformed, expired, and already-revoked
// tokens are reported distinctly; revocation is not idempotent.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return common.NewError(common.ErrBadRequest, "Refresh token is required.")
	}

	claims, err := s.parseRefresh(refreshToken)
	if err != nil {
		return err
	}

	revoked, err := s.revoked.Contains(ctx, claims.TokenID)
	if err != nil {
		return fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		return common.NewError(common.ErrBadRequest, "Refresh token has already been revoked.")
	}

	// The entry only needs to outlive the token itself.
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return common.NewError(common.ErrBadRequest, "Refresh token has expired.")
	}
	if err := s.revoked.Add(ctx, claims.TokenID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *AuthService) parseRefresh(refreshToken string) (*security.RefreshClaims, error) {
	claims, err := security.ParseRefreshToken(refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, security.ErrTokenExpired):
			return nil, common.NewError(common.ErrBadRequest, "Refresh token has expired.")
		default:
			return nil, common.NewError(common.ErrBadRequest, "Refresh token is malformed.")
		}
	}
	return claims, nil
}

func (s *AuthService) issuePair(user *model.User) (*TokenPair, error) {
	accessToken, err := security.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, _, err := security.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
