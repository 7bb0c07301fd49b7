// Package dashboard computes the derived views behind the monitoring
// dashboard: summary counts, the driver readiness table, the event table and
// the map points. All functions are pure reads over the record store; joins
// across collections go through driver_id and device_id and silently degrade
// to defaults when the other side is missing.
package dashboard

import (
	"strings"
	"time"

	"wearable-backend/internal/models"
	"wearable-backend/internal/store"
)

// Default thresholds for the configurable summary counts.
const (
	DefaultBPSysThreshold         = 140
	DefaultBPDiaThreshold         = 90
	DefaultSleepScoreThreshold    = 60
	DefaultSleepDurationThreshold = 360
)

// Readiness approval limits. Deliberately separate literals from the summary
// thresholds above: the summary ones are query-tunable, these are not.
const (
	readinessBPSysLimit    = 140
	readinessBPDiaLimit    = 90
	readinessSleepScoreMin = 60

	// A driver with no sleep record at all passes the sleep clause;
	// readiness then rests on blood pressure alone.
	missingSleepScore = 100
)

type Thresholds struct {
	BPSys         int
	BPDia         int
	SleepScore    int
	SleepDuration int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		BPSys:         DefaultBPSysThreshold,
		BPDia:         DefaultBPDiaThreshold,
		SleepScore:    DefaultSleepScoreThreshold,
		SleepDuration: DefaultSleepDurationThreshold,
	}
}

type Summary struct {
	HighBPCount             int `json:"high_bp_count"`
	LowSleepScoreCount      int `json:"low_sleep_score_count"`
	UnderSleepDurationCount int `json:"under_sleep_duration_count"`
	OnlineDevices           int `json:"online_devices"`
	OfflineDevices          int `json:"offline_devices"`
}

// Summarize counts health records above the BP thresholds, today's sleep
// records below the score/duration thresholds, and online/offline devices.
// Counts are over the full sets with no per-driver deduplication, and a
// sleep record may contribute to both sleep counts.
func Summarize(s store.Store, t Thresholds) (Summary, error) {
	var summary Summary

	health, err := s.Query(models.CollectionHealthRecord, nil)
	if err != nil {
		return summary, err
	}
	today := time.Now().UTC().Format("2006-01-02")
	sleep, err := s.Query(models.CollectionSleepRecord, store.Filter{"date": today})
	if err != nil {
		return summary, err
	}
	devices, err := s.Query(models.CollectionDevice, nil)
	if err != nil {
		return summary, err
	}

	for _, h := range health {
		if h.Int("bp_systolic") > t.BPSys || h.Int("bp_diastolic") > t.BPDia {
			summary.HighBPCount++
		}
	}
	for _, rec := range sleep {
		if rec.Int("score") < t.SleepScore {
			summary.LowSleepScoreCount++
		}
		if rec.Int("duration_minutes") < t.SleepDuration {
			summary.UnderSleepDurationCount++
		}
	}
	for _, d := range devices {
		if d.Bool("is_online") {
			summary.OnlineDevices++
		} else {
			summary.OfflineDevices++
		}
	}
	return summary, nil
}

type ReadinessRow struct {
	Datetime       string `json:"datetime"`
	DriverName     string `json:"driver_name"`
	DeviceID       string `json:"device_id"`
	LastSleepScore *int   `json:"last_sleep_score"`
	LastBPSystolic int    `json:"last_bp_systolic"`
	LastBPDiastole int    `json:"last_bp_diastolic"`
	Status         string `json:"status"`
}

// Readiness joins each health record to its driver's sleep record and labels
// the driver "approved" or "not approved". When a driver has several sleep
// records the last inserted one wins (the store guarantees insertion order).
// q filters by case-insensitive substring on driver name, status by exact
// case-insensitive match on the computed label.
func Readiness(s store.Store, q, status string) ([]ReadinessRow, error) {
	health, err := s.Query(models.CollectionHealthRecord, nil)
	if err != nil {
		return nil, err
	}
	sleep, err := s.Query(models.CollectionSleepRecord, nil)
	if err != nil {
		return nil, err
	}

	sleepByDriver := make(map[string]store.Document)
	for _, rec := range sleep {
		sleepByDriver[rec.String("driver_id")] = rec
	}

	rows := make([]ReadinessRow, 0, len(health))
	for _, h := range health {
		rec := sleepByDriver[h.String("driver_id")]

		score := missingSleepScore
		var lastScore *int
		if rec != nil {
			score = rec.IntOr("score", missingSleepScore)
			if rec.Has("score") {
				v := rec.Int("score")
				lastScore = &v
			}
		}

		ok := h.Int("bp_systolic") < readinessBPSysLimit &&
			h.Int("bp_diastolic") < readinessBPDiaLimit &&
			score >= readinessSleepScoreMin

		label := "not approved"
		if ok {
			label = "approved"
		}

		row := ReadinessRow{
			Datetime:       h.String("timestamp"),
			DriverName:     h.String("driver_name"),
			DeviceID:       h.String("device_id"),
			LastSleepScore: lastScore,
			LastBPSystolic: h.Int("bp_systolic"),
			LastBPDiastole: h.Int("bp_diastolic"),
			Status:         label,
		}
		if q != "" && !containsFold(row.DriverName, q) {
			continue
		}
		if status != "" && !strings.EqualFold(row.Status, status) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type EventRow struct {
	Datetime    string `json:"datetime"`
	DriverName  string `json:"driver_name"`
	DeviceID    string `json:"device_id"`
	StatusEvent string `json:"status_event"`
	Address     string `json:"address"`
}

// Events projects every event to a table row, with the address pulled out of
// the nested location. Filters mirror Readiness: substring on driver name,
// exact case-insensitive match on status_event.
func Events(s store.Store, q, statusEvent string) ([]EventRow, error) {
	events, err := s.Query(models.CollectionEvent, nil)
	if err != nil {
		return nil, err
	}

	rows := make([]EventRow, 0, len(events))
	for _, e := range events {
		row := EventRow{
			Datetime:    e.String("timestamp"),
			DriverName:  e.String("driver_name"),
			DeviceID:    e.String("device_id"),
			StatusEvent: e.String("status_event"),
			Address:     e.Map("location").String("address"),
		}
		if q != "" && !containsFold(row.DriverName, q) {
			continue
		}
		if statusEvent != "" && !strings.EqualFold(row.StatusEvent, statusEvent) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type MapPoint struct {
	DeviceID   string  `json:"device_id"`
	DriverName string  `json:"driver_name"`
	Battery    int     `json:"battery"`
	Event      *string `json:"event"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// MapPoints builds one point per device from its last_location, annotated
// with the device's event when one exists. As with the readiness sleep join,
// the last inserted event per device wins.
func MapPoints(s store.Store) ([]MapPoint, error) {
	devices, err := s.Query(models.CollectionDevice, nil)
	if err != nil {
		return nil, err
	}
	events, err := s.Query(models.CollectionEvent, nil)
	if err != nil {
		return nil, err
	}

	eventByDevice := make(map[string]store.Document)
	for _, e := range events {
		eventByDevice[e.String("device_id")] = e
	}

	points := make([]MapPoint, 0, len(devices))
	for _, d := range devices {
		loc := d.Map("last_location")
		point := MapPoint{
			DeviceID:   d.String("device_id"),
			DriverName: d.String("driver_name"),
			Battery:    d.Int("battery"),
			Address:    loc.String("address"),
			Lat:        loc.Float("lat"),
			Lng:        loc.Float("lng"),
		}
		if e, ok := eventByDevice[point.DeviceID]; ok && e.Has("status_event") {
			v := e.String("status_event")
			point.Event = &v
		}
		points = append(points, point)
	}
	return points, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
