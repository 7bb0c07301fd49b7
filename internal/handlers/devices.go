package handlers

import (
	"errors"
	"net/http"

	"wearable-backend/internal/devices"
	"wearable-backend/internal/store"
	"wearable-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// GetDevices handles GET /devices?q.
func GetDevices(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := devices.List(s, r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "Failed to fetch devices", http.StatusInternalServerError)
			return
		}
		utils.Items(w, items)
	}
}

// GetDeviceDetail handles GET /devices/{device_id}. Unknown ids are the one
// 404 in the API.
func GetDeviceDetail(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := chi.URLParam(r, "device_id")
		detail, err := devices.GetDetail(s, deviceID)
		if errors.Is(err, devices.ErrDeviceNotFound) {
			utils.Error(w, http.StatusNotFound, "Device not found")
			return
		}
		if err != nil {
			http.Error(w, "Failed to fetch device", http.StatusInternalServerError)
			return
		}
		utils.JSON(w, http.StatusOK, detail)
	}
}

// GetDeviceSleep handles GET /devices/{device_id}/sleep?date.
func GetDeviceSleep(s store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := devices.Sleep(s, chi.URLParam(r, "device_id"), r.URL.Query().Get("date"))
		if err != nil {
			http.Error(w, "Failed to fetch sleep records", http.StatusInternalServerError)
			return
		}
		utils.Items(w, items)
	}
}

// GetDeviceECG handles GET /devices/{device_id}/ecg. The reading is synthetic
// and ignores the device id, unknown ids included.
func GetDeviceECG() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, devices.ECG())
	}
}
