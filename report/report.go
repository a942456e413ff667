package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Fingel/rideprofile/metrics"
)

// StartLayout matches the C asctime form, e.g. "Thu Jun  1 10:00:00 2017".
const StartLayout = time.ANSIC

// Record is the JSON shape of the aggregate line.
type Record struct {
	Rides     int     `json:"rides"`
	Duration  int64   `json:"duration"`
	Elevation float64 `json:"elevation"`
	Distance  float64 `json:"distance"`
}

func NewRecord(a metrics.Aggregate) Record {
	return Record{
		Rides:     a.Rides,
		Duration:  Seconds(a.Duration),
		Elevation: a.Elevation,
		Distance:  a.Distance,
	}
}

// Seconds truncates d to whole seconds.
func Seconds(d time.Duration) int64 { return int64(d / time.Second) }

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func WriteSummary(w io.Writer, s metrics.Summary) error {
	_, err := fmt.Fprintf(w,
		"%s\nNumber of samples: %d\nStart time: %s\nTotal time: %d seconds\nTotal elevation: %s meters\nTotal distance: %s meters\n",
		s.Title, s.Samples, s.Start.Format(StartLayout), Seconds(s.Duration), num(s.Elevation), num(s.Distance))
	return err
}

// WriteAggregate prints the archive totals as a single JSON object.
func WriteAggregate(w io.Writer, a metrics.Aggregate) error {
	r := NewRecord(a)
	_, err := fmt.Fprintf(w, "{\"rides\": %d, \"duration\": %d, \"elevation\": %s, \"distance\": %s}\n",
		r.Rides, r.Duration, num(r.Elevation), num(r.Distance))
	return err
}
