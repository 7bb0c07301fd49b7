// Package devices serves the device listing, detail, sleep history and the
// synthetic ECG feed.
package devices

import (
	"errors"
	"strings"

	"wearable-backend/internal/models"
	"wearable-backend/internal/store"
)

// ErrDeviceNotFound is the one lookup failure this service reports as an
// error; every other absent-data case degrades to empty results.
var ErrDeviceNotFound = errors.New("device not found")

// List returns all devices, optionally filtered by a case-insensitive
// substring over "device_id driver_name". Each returned document gets a
// 1-based "no" display sequence in listing order; it is recomputed every
// call and is not a stable identifier.
func List(s store.Store, q string) ([]store.Document, error) {
	docs, err := s.Query(models.CollectionDevice, nil)
	if err != nil {
		return nil, err
	}

	results := make([]store.Document, 0, len(docs))
	for _, d := range docs {
		if q != "" {
			haystack := strings.ToLower(d.String("device_id") + " " + d.String("driver_name"))
			if !strings.Contains(haystack, strings.ToLower(q)) {
				continue
			}
		}
		d["no"] = len(results) + 1
		results = append(results, d)
	}
	return results, nil
}

// Detail is the device page payload: the device itself, its first health
// record (null when none), and all of its sleep records and events.
type Detail struct {
	Device store.Document   `json:"device"`
	Health store.Document   `json:"health"`
	Sleep  []store.Document `json:"sleep"`
	Events []store.Document `json:"events"`
}

func GetDetail(s store.Store, deviceID string) (*Detail, error) {
	matches, err := s.Query(models.CollectionDevice, store.Filter{"device_id": deviceID})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrDeviceNotFound
	}

	health, err := s.Query(models.CollectionHealthRecord, store.Filter{"device_id": deviceID})
	if err != nil {
		return nil, err
	}
	sleep, err := s.Query(models.CollectionSleepRecord, store.Filter{"device_id": deviceID})
	if err != nil {
		return nil, err
	}
	events, err := s.Query(models.CollectionEvent, store.Filter{"device_id": deviceID})
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		Device: matches[0],
		Sleep:  sleep,
		Events: events,
	}
	if len(health) > 0 {
		detail.Health = health[0]
	}
	return detail, nil
}

// Sleep returns the device's sleep records, narrowed to an exact calendar
// date when one is given.
func Sleep(s store.Store, deviceID, date string) ([]store.Document, error) {
	filter := store.Filter{"device_id": deviceID}
	if date != "" {
		filter["date"] = date
	}
	return s.Query(models.CollectionSleepRecord, filter)
}
