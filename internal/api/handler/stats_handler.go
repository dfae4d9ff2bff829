package handler

import (
	"net/http"

	"eventdesk/internal/app/service"
	"eventdesk/internal/common"

	"github.com/go-chi/chi/v5"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/event/count/", h.counts)
}

func (h *StatsHandler) counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.statsService.Counts(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, counts)
}
