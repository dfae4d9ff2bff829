package handler

import (
	"encoding/json"
	"net/http"

	"eventdesk/internal/app/service"
	"eventdesk/internal/common"
	"eventdesk/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type RegistrationHandler struct {
	registrationService *service.RegistrationService
}

func NewRegistrationHandler(registrationService *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

func (h *RegistrationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/event/register/", h.register)
}

type registrationResponse struct {
	*model.Registration
	Message string `json:"message,omitempty"`
}

func (h *RegistrationHandler) register(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	registration, err := h.registrationService.Register(r.Context(), actor, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, registrationResponse{
		Registration: registration,
		Message:      "Event Register successfully",
	})
}
