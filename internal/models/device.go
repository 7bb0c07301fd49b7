package models

// Device master data. DeviceID is the join key used by health, sleep and
// event records. Devices are mutated by the wearable gateway, not by this
// service; everything here is read-only.
type Device struct {
	DeviceID     string    `json:"device_id"`
	DriverID     string    `json:"driver_id,omitempty"`
	DriverName   string    `json:"driver_name"`
	Battery      int       `json:"battery"`
	IsOnline     bool      `json:"is_online"`
	LastLocation *Location `json:"last_location"`
}
