package models

import "time"

// HealthRecord is one vitals snapshot per driver. Multiple records may exist
// per driver; readers take the first match from the store.
type HealthRecord struct {
	DriverID        string    `json:"driver_id"`
	DriverName      string    `json:"driver_name"`
	DeviceID        string    `json:"device_id"`
	Timestamp       time.Time `json:"timestamp"`
	HeartRate       int       `json:"heart_rate"`
	BPSystolic      int       `json:"bp_systolic"`
	BPDiastolic     int       `json:"bp_diastolic"`
	Temperature     float64   `json:"temperature"`
	Calories        int       `json:"calories"`
	Steps           int       `json:"steps"`
	DurationMinutes int       `json:"duration_minutes"`
	Kilometers      float64   `json:"kilometers"`
}
