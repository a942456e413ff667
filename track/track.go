package track

import (
	"errors"
	"fmt"
	"time"

	"github.com/Fingel/rideprofile/geo"
)

// DefaultTitle is used when the track's name element carries no text.
const DefaultTitle = "Unnamed Activity"

// TimeLayout is the only accepted form of a point's time text. A single
// trailing "Z" is tolerated.
const TimeLayout = "2006-01-02T15:04:05"

var (
	ErrMalformed  = errors.New("malformed gpx document")
	ErrEmptyTrack = errors.New("track has no samples")
)

// Sample is one track point.
type Sample struct {
	geo.Point
	Elevation float64
	Time      time.Time
}

// Track is a titled, document-ordered sequence of samples.
type Track struct {
	Title   string
	Samples []Sample
}

// First returns the first sample or ErrEmptyTrack.
func (t *Track) First() (Sample, error) {
	if len(t.Samples) == 0 {
		return Sample{}, ErrEmptyTrack
	}
	return t.Samples[0], nil
}

// FieldError reports a missing or unparsable element or attribute at Path.
// It matches ErrMalformed with errors.Is.
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrMalformed, e.Path, e.Err)
}

func (e *FieldError) Unwrap() []error { return []error{ErrMalformed, e.Err} }

var (
	errMissing = errors.New("missing")
	errEmpty   = errors.New("empty")
)
