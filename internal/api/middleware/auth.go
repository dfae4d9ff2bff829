package middleware

import (
	"context"
	"net/http"
	"strings"

	"eventdesk/internal/common"
	"eventdesk/internal/common/security"
	"eventdesk/internal/domain/policy"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const actorCtxKey contextKey = "actor"

// Authenticator resolves the verified bearer token into a policy.Actor and
// stores it in the request context. Handlers read it back once and pass it
// explicitly into every service call; nothing downstream touches the token.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context()) // Extracts token from Authorization header

		if err != nil {
			if strings.Contains(err.Error(), "token not found") || token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			} else {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token: "+err.Error())
			}
			return
		}

		if token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		// A refresh token is not a bearer credential.
		if typ, err := security.GetTokenTypeFromClaims(claims); err != nil || typ != "access" {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token type")
			return
		}

		userID, err := security.GetUserIDFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}
		userRole, err := security.GetUserRoleFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}
		if !userRole.Valid() {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: unknown role")
			return
		}

		actor := policy.Actor{ID: userID, Role: userRole}
		ctx := context.WithValue(r.Context(), actorCtxKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext returns the authenticated actor placed by Authenticator.
func ActorFromContext(ctx context.Context) (policy.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey).(policy.Actor)
	return actor, ok
}
