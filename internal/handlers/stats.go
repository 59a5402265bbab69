package handlers

import (
	"net/http"
	"time"

	"github.com/arnavag/life-tracker/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Stats returns per-day task tallies for ?period=week or month
// (the default).
func (handler *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	stats, err := handler.statsService.ForPeriod(r.Context(), period, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (handler *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := handler.statsService.Dashboard(r.Context(), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}
