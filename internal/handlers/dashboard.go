package handlers

import (
	"net/http"
	"strconv"

	"wearable-backend/internal/dashboard"
	"wearable-backend/internal/store"
	"wearable-backend/pkg/utils"
)

// GetDashboardSummary handles GET /dashboard/summary. Thresholds come from
// query parameters and fall back to the defaults when absent or malformed.
func GetDashboardSummary(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := dashboard.Thresholds{
			BPSys:         intQuery(r, "bp_sys_threshold", dashboard.DefaultBPSysThreshold),
			BPDia:         intQuery(r, "bp_dia_threshold", dashboard.DefaultBPDiaThreshold),
			SleepScore:    intQuery(r, "sleep_score_threshold", dashboard.DefaultSleepScoreThreshold),
			SleepDuration: intQuery(r, "sleep_duration_threshold", dashboard.DefaultSleepDurationThreshold),
		}

		summary, err := dashboard.Summarize(s, t)
		if err != nil {
			http.Error(w, "Failed to build summary", http.StatusInternalServerError)
			return
		}
		utils.JSON(w, http.StatusOK, summary)
	}
}

// GetDriverReadiness handles GET /dashboard/readiness?q&status.
func GetDriverReadiness(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := dashboard.Readiness(s, r.URL.Query().Get("q"), r.URL.Query().Get("status"))
		if err != nil {
			http.Error(w, "Failed to build readiness table", http.StatusInternalServerError)
			return
		}
		utils.Items(w, rows)
	}
}

// GetEventsTable handles GET /dashboard/events?q&status_event.
func GetEventsTable(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := dashboard.Events(s, r.URL.Query().Get("q"), r.URL.Query().Get("status_event"))
		if err != nil {
			http.Error(w, "Failed to build events table", http.StatusInternalServerError)
			return
		}
		utils.Items(w, rows)
	}
}

// GetMapPoints handles GET /dashboard/map.
func GetMapPoints(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		points, err := dashboard.MapPoints(s)
		if err != nil {
			http.Error(w, "Failed to build map points", http.StatusInternalServerError)
			return
		}
		utils.Items(w, points)
	}
}

func intQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
