package handlers

import (
	"net/http"
	"os"

	"wearable-backend/internal/store"
	"wearable-backend/pkg/utils"
)

// TestStore handles GET /test: a connectivity diagnostic reporting the store
// status, the first collection names, and which env vars are set. Store
// failures are surfaced here as descriptive status strings instead of errors.
func TestStore(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		collections, err := s.Collections()
		if err != nil {
			msg := err.Error()
			if len(msg) > 50 {
				msg = msg[:50]
			}
			response["database"] = "⚠️  Connected but Error: " + msg
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			response["collections"] = collections
			response["database"] = "✅ Connected & Working"
			response["connection_status"] = "Connected"
		}

		response["database_url"] = envFlag("DATABASE_URL")
		response["database_name"] = envFlag("DATABASE_NAME")

		utils.JSON(w, http.StatusOK, response)
	}
}

func envFlag(name string) string {
	if os.Getenv(name) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
