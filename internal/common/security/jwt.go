package security

import (
	"errors"
	"time"

	"eventdesk/internal/domain/model"
	"eventdesk/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var TokenAuth *jwtauth.JWTAuth

// Typed token failures. Callers turn these into caller-facing messages so a
// malformed token, an expired one, and a revoked one stay distinguishable.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateAccessToken issues a short-lived self-contained token carrying the
// user reference and role. Validation needs no server-side lookup.
func GenerateAccessToken(userID string, role model.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"typ":     tokenTypeAccess,
		"exp":     now.Add(config.AppConfig.AccessTokenExp).Unix(),
		"iat":     now.Unix(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// GenerateRefreshToken issues a longer-lived token identified by a fresh jti.
// The jti is what the denylist keys revocations on.
func GenerateRefreshToken(userID string) (tokenString, tokenID string, err error) {
	now := time.Now()
	tokenID = uuid.NewString()
	claims := jwt.MapClaims{
		"user_id": userID,
		"jti":     tokenID,
		"typ":     tokenTypeRefresh,
		"exp":     now.Add(config.AppConfig.RefreshTokenExp).Unix(),
		"iat":     now.Unix(),
	}
	_, tokenString, err = TokenAuth.Encode(claims)
	return tokenString, tokenID, err
}

type AccessClaims struct {
	UserID string
	Role   model.Role
}

// ParseAccessToken verifies signature, expiry, and token type.
func ParseAccessToken(tokenString string) (*AccessClaims, error) {
	claims, err := parseHS256(tokenString, tokenTypeAccess)
	if err != nil {
		return nil, err
	}
	userID, err := GetUserIDFromClaims(claims)
	if err != nil {
		return nil, ErrTokenMalformed
	}
	role, err := GetUserRoleFromClaims(claims)
	if err != nil {
		return nil, ErrTokenMalformed
	}
	return &AccessClaims{UserID: userID, Role: role}, nil
}

type RefreshClaims struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

// ParseRefreshToken verifies signature, expiry, and token type. Revocation is
// checked separately against the denylist; a revoked token still parses.
func ParseRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims, err := parseHS256(tokenString, tokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	userID, err := GetUserIDFromClaims(claims)
	if err != nil {
		return nil, ErrTokenMalformed
	}
	tokenID, ok := claims["jti"].(string)
	if !ok || tokenID == "" {
		return nil, ErrTokenMalformed
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrTokenMalformed
	}
	return &RefreshClaims{UserID: userID, TokenID: tokenID, ExpiresAt: exp.Time}, nil
}

func parseHS256(tokenString, wantType string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return config.AppConfig.JWTKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	if typ, _ := claims["typ"].(string); typ != wantType {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

// Helper functions to extract claims, can be used in middleware or services
func GetUserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["user_id"].(string)
	if !ok {
		return "", errors.New("user_id claim is missing or not a string")
	}
	return id, nil
}

func GetUserRoleFromClaims(claims jwt.MapClaims) (model.Role, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return model.Role(role), nil
}

// GetTokenTypeFromClaims lets the middleware reject refresh tokens presented
// as bearer credentials.
func GetTokenTypeFromClaims(claims jwt.MapClaims) (string, error) {
	typ, ok := claims["typ"].(string)
	if !ok {
		return "", errors.New("typ claim is missing or not a string")
	}
	return typ, nil
}
