package devices_test

import (
	"testing"
	"time"

	"wearable-backend/internal/database"
	"wearable-backend/internal/devices"
	"wearable-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) store.Store {
	t.Helper()
	s := store.NewMemoryStore()
	require.NoError(t, database.Seed(s))
	return s
}

func TestListAssignsSequenceNumbers(t *testing.T) {
	s := seededStore(t)

	items, err := devices.List(s, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Int("no"))
	assert.Equal(t, "DEV-1001", items[0].String("device_id"))
	assert.Equal(t, 2, items[1].Int("no"))
}

func TestListFilterMatchesIDAndDriverName(t *testing.T) {
	s := seededStore(t)

	// Substring of a driver name: sequence numbers restart at 1 for the
	// filtered listing.
	items, err := devices.List(s, "siti")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "DEV-1002", items[0].String("device_id"))
	assert.Equal(t, 1, items[0].Int("no"))

	// Substring of a device id matches both seeded devices
	items, err = devices.List(s, "dev-100")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = devices.List(s, "nobody")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetDetailUnknownDevice(t *testing.T) {
	s := seededStore(t)

	_, err := devices.GetDetail(s, "DEV-9999")
	assert.ErrorIs(t, err, devices.ErrDeviceNotFound)
}

func TestGetDetailKnownDevice(t *testing.T) {
	s := seededStore(t)

	detail, err := devices.GetDetail(s, "DEV-1001")
	require.NoError(t, err)

	assert.Equal(t, "DEV-1001", detail.Device.String("device_id"))
	require.NotNil(t, detail.Health)
	assert.Equal(t, 145, detail.Health.Int("bp_systolic"))
	require.Len(t, detail.Sleep, 1)
	assert.Equal(t, 58, detail.Sleep[0].Int("score"))
	require.Len(t, detail.Events, 1)
	assert.Equal(t, "Low Battery", detail.Events[0].String("status_event"))
}

func TestSleepDateFilter(t *testing.T) {
	s := seededStore(t)
	today := time.Now().UTC().Format("2006-01-02")

	records, err := devices.Sleep(s, "DEV-1001", "")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = devices.Sleep(s, "DEV-1001", today)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = devices.Sleep(s, "DEV-1001", "2000-01-01")
	require.NoError(t, err)
	assert.Empty(t, records)
}
