package track

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// Parse builds the element tree of a GPX document and extracts its track.
func Parse(data []byte) (*Track, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, &FieldError{Path: "/", Err: errMissing}
	}

	title, err := ExtractTitle(root)
	if err != nil { return nil, err }
	samples, err := ExtractSamples(root)
	if err != nil { return nil, err }
	return &Track{Title: title, Samples: samples}, nil
}

// ExtractTitle returns the text of trk/name, or DefaultTitle when it is empty.
// Both elements must be present.
func ExtractTitle(root *etree.Element) (string, error) {
	trk, err := child(root, "trk", "trk")
	if err != nil { return "", err }
	name, err := child(trk, "name", "trk/name")
	if err != nil { return "", err }
	if s := text(name); s != "" {
		return s, nil
	}
	return DefaultTitle, nil
}

// ExtractSamples converts every trkpt of the first trk/trkseg, in document
// order.
func ExtractSamples(root *etree.Element) ([]Sample, error) {
	trk, err := child(root, "trk", "trk")
	if err != nil { return nil, err }
	seg, err := child(trk, "trkseg", "trk/trkseg")
	if err != nil { return nil, err }

	pts := seg.SelectElements("trkpt")
	out := make([]Sample, 0, len(pts))
	for i, pt := range pts {
		s, err := sampleOf(pt, fmt.Sprintf("trk/trkseg/trkpt[%d]", i+1))
		if err != nil { return nil, err }
		out = append(out, s)
	}
	return out, nil
}

func sampleOf(pt *etree.Element, path string) (Sample, error) {
	var s Sample
	var err error
	if s.Lat, err = floatAttr(pt, "lat", path); err != nil {
		return Sample{}, err
	}
	if s.Lon, err = floatAttr(pt, "lon", path); err != nil {
		return Sample{}, err
	}
	if s.Elevation, err = elevation(pt, path+"/ele"); err != nil {
		return Sample{}, err
	}
	if s.Time, err = timestamp(pt, path+"/time"); err != nil {
		return Sample{}, err
	}
	return s, nil
}

// ele: the element is required, its value is not
func elevation(pt *etree.Element, path string) (float64, error) {
	ele, err := child(pt, "ele", path)
	if err != nil { return 0, err }
	raw := text(ele)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FieldError{Path: path, Err: err}
	}
	return v, nil
}

func timestamp(pt *etree.Element, path string) (time.Time, error) {
	el, err := child(pt, "time", path)
	if err != nil { return time.Time{}, err }
	raw := text(el)
	if raw == "" {
		return time.Time{}, &FieldError{Path: path, Err: errEmpty}
	}
	t, err := ParseTime(raw)
	if err != nil {
		return time.Time{}, &FieldError{Path: path, Err: err}
	}
	return t, nil
}

// ParseTime parses TimeLayout in UTC. Fractional seconds and numeric offsets
// are rejected.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSuffix(s, "Z")
	// time.Parse silently accepts fractional seconds
	if len(s) != len(TimeLayout) {
		return time.Time{}, fmt.Errorf("time %q: want layout %s", s, TimeLayout)
	}
	return time.ParseInLocation(TimeLayout, s, time.UTC)
}

func floatAttr(el *etree.Element, key, path string) (float64, error) {
	a := el.SelectAttr(key)
	if a == nil {
		return 0, &FieldError{Path: path + "@" + key, Err: errMissing}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
	if err != nil {
		return 0, &FieldError{Path: path + "@" + key, Err: err}
	}
	return v, nil
}

func child(el *etree.Element, tag, path string) (*etree.Element, error) {
	c := el.SelectElement(tag)
	if c == nil {
		return nil, &FieldError{Path: path, Err: errMissing}
	}
	return c, nil
}

// all character data directly inside el, including text after child elements
func text(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return strings.TrimSpace(b.String())
}
