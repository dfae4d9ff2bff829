package handler

import (
	"net/http"

	"eventdesk/internal/api/middleware"
	"eventdesk/internal/common"
	"eventdesk/internal/domain/policy"
)

type messageResponse struct {
	Message string `json:"message"`
}

// requireActor pulls the authenticated actor out of the request context. The
// Authenticator middleware guarantees it is there on protected routes; a miss
// means the route was wired without it.
func requireActor(w http.ResponseWriter, r *http.Request) (policy.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
		return policy.Actor{}, false
	}
	return actor, true
}
