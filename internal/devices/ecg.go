package devices

import (
	"math"
	"time"
)

// ECGSampleCount is the fixed window size of one ECG reading.
const ECGSampleCount = 60

// ECGReading is one synthetic waveform window paired with the time it was
// generated.
type ECGReading struct {
	Timestamp time.Time `json:"timestamp"`
	Samples   []int     `json:"samples"`
}

// Waveform generates n synthetic ECG samples starting at the given sample
// offset: floor(50 + 30*sin(i/6.0) + 10*sin(i/1.3)). The wave is a pure
// function of the sample index and is not derived from any stored data.
func Waveform(offset, n int) []int {
	samples := make([]int, n)
	for k := range samples {
		i := float64(offset + k)
		samples[k] = int(math.Floor(50 + 30*math.Sin(i/6.0) + 10*math.Sin(i/1.3)))
	}
	return samples
}

// ECG returns the waveform window every device reports. The device id is
// deliberately not validated: unknown devices get the same synthetic wave.
func ECG() ECGReading {
	return ECGReading{
		Timestamp: time.Now().UTC(),
		Samples:   Waveform(0, ECGSampleCount),
	}
}
