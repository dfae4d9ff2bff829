package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"eventdesk/internal/app/service"
	"eventdesk/internal/common"
	"eventdesk/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewUserHandler(authService *service.AuthService, userService *service.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

// RegisterPublicRoutes wires the unauthenticated signup route.
func (h *UserHandler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/user/create/", h.create)
}

// RegisterProtectedRoutes wires the routes that need a bearer token.
func (h *UserHandler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/users/list/", h.list)
	r.Route("/user/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Put("/", h.update)
		r.Patch("/", h.update)
		r.Delete("/", h.delete)
	})
}

type userResponse struct {
	*model.User
	Message string `json:"message,omitempty"`
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	user, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, userResponse{User: user, Message: "User created successfully"})
}

func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	users, err := h.userService.List(r.Context(), actor)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	user, err := h.userService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	var req service.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	user, err := h.userService.Update(r.Context(), actor, chi.URLParam(r, "id"), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, userResponse{User: user, Message: "User updated successfully"})
}

func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	user, err := h.userService.Delete(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	message := fmt.Sprintf("User %s has been deleted successfully.", user.Username)
	common.RespondWithJSON(w, http.StatusOK, messageResponse{Message: message})
}
