package models

import "time"

// Event statuses emitted by the wearables.
const (
	EventSOS           = "SOS"
	EventFallDown      = "Fall Down"
	EventLowBattery    = "Low Battery"
	EventRemoveWearble = "Remove Smart Wearable"
)

// Event is a device alert (SOS, fall, low battery, wearable removed).
type Event struct {
	DriverID    string    `json:"driver_id"`
	DriverName  string    `json:"driver_name"`
	DeviceID    string    `json:"device_id"`
	Timestamp   time.Time `json:"timestamp"`
	StatusEvent string    `json:"status_event"`
	Location    *Location `json:"location"`
}
