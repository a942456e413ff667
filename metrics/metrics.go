package metrics

import (
	"time"

	"github.com/Fingel/rideprofile/geo"
	"github.com/Fingel/rideprofile/track"
)

// Duration is the last sample's time minus the first's. Out-of-order input
// can make it negative.
func Duration(samples []track.Sample) (time.Duration, error) {
	if len(samples) == 0 {
		return 0, track.ErrEmptyTrack
	}
	return samples[len(samples)-1].Time.Sub(samples[0].Time), nil
}

// ElevationGain starts from the first sample's elevation and adds every
// positive step between consecutive samples. Descents add nothing.
func ElevationGain(samples []track.Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, track.ErrEmptyTrack
	}
	gain := samples[0].Elevation
	for i := 1; i < len(samples); i++ {
		if d := samples[i].Elevation - samples[i-1].Elevation; d > 0 {
			gain += d
		}
	}
	return gain, nil
}

// TotalDistance sums the great-circle legs between consecutive samples.
func TotalDistance(samples []track.Sample) float64 {
	d := 0.0
	for i := 1; i < len(samples); i++ {
		d += geo.Distance(samples[i-1].Point, samples[i].Point)
	}
	return d
}
