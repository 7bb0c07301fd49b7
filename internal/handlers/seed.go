package handlers

import (
	"net/http"

	"wearable-backend/internal/database"
	"wearable-backend/internal/store"
	"wearable-backend/pkg/utils"
)

// SeedDemoData handles POST /seed. Seeding is idempotent, so calling this on
// an already-populated store is a no-op.
func SeedDemoData(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.Seed(s); err != nil {
			http.Error(w, "Failed to seed demo data", http.StatusInternalServerError)
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
