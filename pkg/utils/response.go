package utils

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Items wraps tabular results the way the dashboard front-end expects them.
func Items(w http.ResponseWriter, items interface{}) {
	JSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
