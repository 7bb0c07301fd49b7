// Package websocket streams the synthetic ECG feed to dashboard clients.
package websocket

import (
	"log"
	"net/http"
	"time"

	"wearable-backend/internal/devices"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The REST surface is open CORS; the socket matches it.
		return true
	},
}

const frameInterval = time.Second

// HandleECGStream upgrades GET /devices/{device_id}/ecg/stream and pushes one
// ECG frame per second, advancing the sample offset each frame so the wave
// continues across frames. Like the REST ECG endpoint, the device id is not
// validated.
func HandleECGStream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deviceID := chi.URLParam(r, "device_id")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("❌ [WEBSOCKET] Upgrade failed for %s: %v", deviceID, err)
			return
		}
		defer conn.Close()

		log.Printf("✅ [WEBSOCKET] ECG stream opened for device %s", deviceID)

		// Reader goroutine: the client sends nothing meaningful, but reading
		// is how we notice the peer going away.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()

		offset := 0
		for {
			frame := devices.ECGReading{
				Timestamp: time.Now().UTC(),
				Samples:   devices.Waveform(offset, devices.ECGSampleCount),
			}
			if err := conn.WriteJSON(frame); err != nil {
				log.Printf("🔌 [WEBSOCKET] ECG stream closed for device %s: %v", deviceID, err)
				return
			}
			offset += devices.ECGSampleCount

			select {
			case <-done:
				log.Printf("🔌 [WEBSOCKET] Client disconnected from device %s", deviceID)
				return
			case <-ticker.C:
			}
		}
	}
}
