package metrics

import (
	"fmt"
	"time"

	"github.com/Fingel/rideprofile/track"
)

// Summary holds the per-track results.
type Summary struct {
	Title     string
	Samples   int
	Start     time.Time
	Duration  time.Duration
	Elevation float64
	Distance  float64
}

// Summarize computes all metrics of t. A track without samples yields
// track.ErrEmptyTrack.
func Summarize(t *track.Track) (Summary, error) {
	first, err := t.First()
	if err != nil {
		return Summary{}, fmt.Errorf("%q: %w", t.Title, err)
	}
	dur, err := Duration(t.Samples)
	if err != nil { return Summary{}, err }
	ele, err := ElevationGain(t.Samples)
	if err != nil { return Summary{}, err }

	return Summary{
		Title:     t.Title,
		Samples:   len(t.Samples),
		Start:     first.Time,
		Duration:  dur,
		Elevation: ele,
		Distance:  TotalDistance(t.Samples),
	}, nil
}

// Aggregate accumulates summaries across an archive.
type Aggregate struct {
	Rides     int
	Duration  time.Duration
	Elevation float64
	Distance  float64
}

func (a *Aggregate) Add(s Summary) {
	a.Rides++
	a.Duration += s.Duration
	a.Elevation += s.Elevation
	a.Distance += s.Distance
}
