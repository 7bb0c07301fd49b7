package database

import (
	"fmt"
	"log"
	"time"

	"wearable-backend/internal/models"
	"wearable-backend/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// Seed inserts the fixed demo records when collections are empty. Each
// collection is guarded independently, so running Seed twice never
// duplicates data.
func Seed(s store.Store) error {
	now := time.Now().UTC()
	today := now.Format("2006-01-02")

	empty, err := collectionEmpty(s, models.CollectionDriver)
	if err != nil {
		return err
	}
	if empty {
		log.Println("🌱 Seeding drivers...")
		drivers := []models.Driver{
			{Name: "Budi Santoso", EmployeeID: "DRV001", Phone: "081234567890", Status: "active"},
			{Name: "Siti Aminah", EmployeeID: "DRV002", Phone: "081298765432", Status: "active"},
		}
		for _, d := range drivers {
			if err := create(s, models.CollectionDriver, d); err != nil {
				return err
			}
		}
	}

	empty, err = collectionEmpty(s, models.CollectionDevice)
	if err != nil {
		return err
	}
	if empty {
		log.Println("🌱 Seeding devices...")
		devices := []models.Device{
			{
				DeviceID:     "DEV-1001",
				DriverName:   "Budi Santoso",
				Battery:      87,
				IsOnline:     true,
				LastLocation: &models.Location{Lat: -6.2, Lng: 106.82, Address: "Jakarta"},
			},
			{
				DeviceID:     "DEV-1002",
				DriverName:   "Siti Aminah",
				Battery:      22,
				IsOnline:     false,
				LastLocation: &models.Location{Lat: -6.21, Lng: 106.85, Address: "Jakarta"},
			},
		}
		for _, d := range devices {
			if err := create(s, models.CollectionDevice, d); err != nil {
				return err
			}
		}
	}

	empty, err = collectionEmpty(s, models.CollectionHealthRecord)
	if err != nil {
		return err
	}
	if empty {
		log.Println("🌱 Seeding health records...")
		records := []models.HealthRecord{
			{
				DriverID: "DRV001", DriverName: "Budi Santoso", DeviceID: "DEV-1001",
				Timestamp: now, HeartRate: 78, BPSystolic: 145, BPDiastolic: 95,
				Temperature: 36.8, Calories: 1200, Steps: 9500,
				DurationMinutes: 75, Kilometers: 6.8,
			},
			{
				DriverID: "DRV002", DriverName: "Siti Aminah", DeviceID: "DEV-1002",
				Timestamp: now, HeartRate: 82, BPSystolic: 118, BPDiastolic: 78,
				Temperature: 36.6, Calories: 980, Steps: 7200,
				DurationMinutes: 60, Kilometers: 4.9,
			},
		}
		for _, r := range records {
			if err := create(s, models.CollectionHealthRecord, r); err != nil {
				return err
			}
		}
	}

	empty, err = collectionEmpty(s, models.CollectionSleepRecord)
	if err != nil {
		return err
	}
	if empty {
		log.Println("🌱 Seeding sleep records...")
		records := []models.SleepRecord{
			{
				DriverID: "DRV001", DriverName: "Budi Santoso", DeviceID: "DEV-1001",
				Date: today, Score: 58, DurationMinutes: 320,
				Segments: []models.SleepSegment{
					{Start: now.Add(-7 * time.Hour), End: now.Add(-6*time.Hour - 45*time.Minute), Type: "light"},
					{Start: now.Add(-6*time.Hour - 45*time.Minute), End: now.Add(-5 * time.Hour), Type: "deep"},
					{Start: now.Add(-5 * time.Hour), End: now.Add(-4*time.Hour - 30*time.Minute), Type: "rem"},
					{Start: now.Add(-4*time.Hour - 30*time.Minute), End: now.Add(-4*time.Hour - 15*time.Minute), Type: "awake"},
				},
			},
			{
				DriverID: "DRV002", DriverName: "Siti Aminah", DeviceID: "DEV-1002",
				Date: today, Score: 82, DurationMinutes: 420,
				Segments: []models.SleepSegment{
					{Start: now.Add(-8 * time.Hour), End: now.Add(-6 * time.Hour), Type: "deep"},
					{Start: now.Add(-6 * time.Hour), End: now.Add(-5 * time.Hour), Type: "light"},
					{Start: now.Add(-5 * time.Hour), End: now.Add(-4 * time.Hour), Type: "rem"},
				},
			},
		}
		for _, r := range records {
			if err := create(s, models.CollectionSleepRecord, r); err != nil {
				return err
			}
		}
	}

	empty, err = collectionEmpty(s, models.CollectionEvent)
	if err != nil {
		return err
	}
	if empty {
		log.Println("🌱 Seeding events...")
		events := []models.Event{
			{
				DriverID: "DRV001", DriverName: "Budi Santoso", DeviceID: "DEV-1001",
				Timestamp: now, StatusEvent: models.EventLowBattery,
				Location: &models.Location{Lat: -6.2, Lng: 106.82, Address: "Jakarta"},
			},
			{
				DriverID: "DRV002", DriverName: "Siti Aminah", DeviceID: "DEV-1002",
				Timestamp: now, StatusEvent: models.EventSOS,
				Location: &models.Location{Lat: -6.21, Lng: 106.85, Address: "Jakarta"},
			},
		}
		for _, e := range events {
			if err := create(s, models.CollectionEvent, e); err != nil {
				return err
			}
		}
	}

	if err := seedUsers(s); err != nil {
		return err
	}

	return nil
}

// seedUsers provisions the demo login accounts. Login accepts any
// credentials, so these exist to give the user collection real data, not to
// gate anything.
func seedUsers(s store.Store) error {
	empty, err := collectionEmpty(s, models.CollectionUser)
	if err != nil {
		return err
	}
	if !empty {
		log.Println("✓ Users already seeded, skipping...")
		return nil
	}

	log.Println("🌱 Seeding demo users...")

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	dispatcherHash, err := bcrypt.GenerateFromPassword([]byte("dispatcher123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash dispatcher password: %w", err)
	}

	users := []models.User{
		{Email: "admin@wearable.local", PasswordHash: string(adminHash), Name: "Admin User", Role: "admin"},
		{Email: "dispatcher@wearable.local", PasswordHash: string(dispatcherHash), Name: "Dispatcher User", Role: "dispatcher"},
	}
	for _, u := range users {
		if err := create(s, models.CollectionUser, u); err != nil {
			return err
		}
		log.Printf("  ✓ Created user: %s (%s)", u.Email, u.Role)
	}

	log.Println("  📧 Admin:      admin@wearable.local / admin123")
	log.Println("  📧 Dispatcher: dispatcher@wearable.local / dispatcher123")
	return nil
}

func collectionEmpty(s store.Store, collection string) (bool, error) {
	docs, err := s.Query(collection, nil)
	if err != nil {
		return false, fmt.Errorf("failed to check collection %s: %w", collection, err)
	}
	return len(docs) == 0, nil
}

func create(s store.Store, collection string, record interface{}) error {
	doc, err := store.ToDocument(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", collection, err)
	}
	if _, err := s.Create(collection, doc); err != nil {
		return fmt.Errorf("failed to seed %s record: %w", collection, err)
	}
	return nil
}
