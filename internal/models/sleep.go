package models

import "time"

// SleepSegment is one slice of a night's sleep timeline. Type is one of
// "light", "deep", "rem", "awake".
type SleepSegment struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Type  string    `json:"type"`
}

// SleepRecord is one row per driver per day. Date is the calendar day as
// YYYY-MM-DD; Score is 0-100.
type SleepRecord struct {
	DriverID        string         `json:"driver_id"`
	DriverName      string         `json:"driver_name"`
	DeviceID        string         `json:"device_id"`
	Date            string         `json:"date"`
	Score           int            `json:"score"`
	DurationMinutes int            `json:"duration_minutes"`
	Segments        []SleepSegment `json:"segments"`
}
