package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wearable-backend/internal/dashboard"
	"wearable-backend/internal/database"
	"wearable-backend/internal/handlers"
	"wearable-backend/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededRouter(t *testing.T) *chi.Mux {
	t.Helper()
	s := store.NewMemoryStore()
	require.NoError(t, database.Seed(s))
	return handlers.NewRouter(s)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestRootMessage(t *testing.T) {
	w := doRequest(t, newSeededRouter(t), http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Smart Wearable Platform API running", resp["message"])
}

func TestSeedEndpoint(t *testing.T) {
	router := handlers.NewRouter(store.NewMemoryStore())

	w := doRequest(t, router, http.MethodPost, "/seed", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.Equal(t, "ok", resp["status"])

	// Seeding twice must not duplicate records
	doRequest(t, router, http.MethodPost, "/seed", "")
	w = doRequest(t, router, http.MethodGet, "/devices", "")
	var listing struct {
		Items []store.Document `json:"items"`
	}
	decodeJSON(t, w, &listing)
	assert.Len(t, listing.Items, 2)
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	router := newSeededRouter(t)

	w := doRequest(t, router, http.MethodGet, "/dashboard/summary", "")
	require.Equal(t, http.StatusOK, w.Code)

	var summary dashboard.Summary
	decodeJSON(t, w, &summary)
	assert.Equal(t, 1, summary.HighBPCount)
	assert.Equal(t, 1, summary.LowSleepScoreCount)
	assert.Equal(t, 1, summary.UnderSleepDurationCount)
	assert.Equal(t, 1, summary.OnlineDevices)
	assert.Equal(t, 1, summary.OfflineDevices)
}

func TestDashboardSummaryThresholdParams(t *testing.T) {
	router := newSeededRouter(t)

	w := doRequest(t, router, http.MethodGet, "/dashboard/summary?bp_sys_threshold=150&bp_dia_threshold=100", "")
	require.Equal(t, http.StatusOK, w.Code)

	var summary dashboard.Summary
	decodeJSON(t, w, &summary)
	assert.Equal(t, 0, summary.HighBPCount)

	// Malformed values fall back to the defaults
	w = doRequest(t, router, http.MethodGet, "/dashboard/summary?bp_sys_threshold=banana", "")
	decodeJSON(t, w, &summary)
	assert.Equal(t, 1, summary.HighBPCount)
}

func TestReadinessEndpointFilter(t *testing.T) {
	router := newSeededRouter(t)

	w := doRequest(t, router, http.MethodGet, "/dashboard/readiness?q=budi", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []dashboard.ReadinessRow `json:"items"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Budi Santoso", resp.Items[0].DriverName)
	assert.Equal(t, "not approved", resp.Items[0].Status)
}

func TestEventsEndpointFilter(t *testing.T) {
	router := newSeededRouter(t)

	w := doRequest(t, router, http.MethodGet, "/dashboard/events?status_event=sos", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []dashboard.EventRow `json:"items"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "SOS", resp.Items[0].StatusEvent)
	assert.Equal(t, "Jakarta", resp.Items[0].Address)
}

func TestMapEndpoint(t *testing.T) {
	router := newSeededRouter(t)

	w := doRequest(t, router, http.MethodGet, "/dashboard/map", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []dashboard.MapPoint `json:"items"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Items, 2)
}

func TestDeviceDetailEndpoint(t *testing.T) {
	router := newSeededRouter(t)

	w := doRequest(t, router, http.MethodGet, "/devices/DEV-1001", "")
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Device store.Document   `json:"device"`
		Health store.Document   `json:"health"`
		Sleep  []store.Document `json:"sleep"`
		Events []store.Document `json:"events"`
	}
	decodeJSON(t, w, &detail)
	assert.Equal(t, "DEV-1001", detail.Device.String("device_id"))
	assert.Equal(t, 145, detail.Health.Int("bp_systolic"))
	assert.Len(t, detail.Sleep, 1)
	assert.Len(t, detail.Events, 1)
}

func TestDeviceDetailNotFound(t *testing.T) {
	router := newSeededRouter(t)

	w := doRequest(t, router, http.MethodGet, "/devices/DEV-9999", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Device not found", resp["error"])
}

func TestDeviceECGEndpoint(t *testing.T) {
	router := newSeededRouter(t)

	// Unknown device ids still get a waveform: the ECG is synthetic
	w := doRequest(t, router, http.MethodGet, "/devices/DEV-9999/ecg", "")
	require.Equal(t, http.StatusOK, w.Code)

	var reading struct {
		Timestamp string `json:"timestamp"`
		Samples   []int  `json:"samples"`
	}
	decodeJSON(t, w, &reading)
	assert.Len(t, reading.Samples, 60)
	assert.NotEmpty(t, reading.Timestamp)
}

func TestLoginDemoToken(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "")
	router := newSeededRouter(t)

	w := doRequest(t, router, http.MethodPost, "/auth/login",
		`{"email":"budi.santoso@example.com","password":"anything"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.LoginResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "demo-token", resp.Token)
	assert.Equal(t, "Budi.Santoso", resp.Name)
	assert.Equal(t, "admin", resp.Role)
}

func TestLoginSignedToken(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "test-secret")
	router := newSeededRouter(t)

	w := doRequest(t, router, http.MethodPost, "/auth/login",
		`{"email":"siti@example.com","password":"anything"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.LoginResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Siti", resp.Name)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "Siti", claims["name"])
}

func TestStoreDiagnosticEndpoint(t *testing.T) {
	router := newSeededRouter(t)

	w := doRequest(t, router, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Backend          string   `json:"backend"`
		Database         string   `json:"database"`
		ConnectionStatus string   `json:"connection_status"`
		Collections      []string `json:"collections"`
	}
	decodeJSON(t, w, &resp)
	assert.Equal(t, "✅ Running", resp.Backend)
	assert.Equal(t, "✅ Connected & Working", resp.Database)
	assert.Equal(t, "Connected", resp.ConnectionStatus)
	assert.Contains(t, resp.Collections, "driver")
	assert.Contains(t, resp.Collections, "healthrecord")
}
