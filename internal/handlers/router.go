package handlers

import (
	"net/http"

	"wearable-backend/internal/store"
	"wearable-backend/internal/websocket"
	"wearable-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the full HTTP surface over the given record store. Paths
// are kept exactly as the dashboard front-end expects them.
func NewRouter(s store.Store) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{"message": "Smart Wearable Platform API running"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Post("/auth/login", Login())
	r.Post("/seed", SeedDemoData(s))

	r.Get("/dashboard/summary", GetDashboardSummary(s))
	r.Get("/dashboard/readiness", GetDriverReadiness(s))
	r.Get("/dashboard/events", GetEventsTable(s))
	r.Get("/dashboard/map", GetMapPoints(s))

	r.Get("/devices", GetDevices(s))
	r.Get("/devices/{device_id}", GetDeviceDetail(s))
	r.Get("/devices/{device_id}/sleep", GetDeviceSleep(s))
	r.Get("/devices/{device_id}/ecg", GetDeviceECG())
	r.Get("/devices/{device_id}/ecg/stream", websocket.HandleECGStream())

	r.Get("/test", TestStore(s))

	return r
}
