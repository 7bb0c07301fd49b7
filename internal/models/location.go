package models

// Location is the {lat, lng, address} shape embedded in devices and events.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}
