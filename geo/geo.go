package geo

import "math"

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371e3

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lon float64
}

func toRad(deg float64) float64 { return deg * math.Pi / 180.0 }

// Distance returns the great-circle distance between a and b in meters
// (haversine). Coordinates are not range-checked.
func Distance(a, b Point) float64 {
	lat1 := toRad(a.Lat)
	lat2 := toRad(b.Lat)
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	sLat := math.Sin(dLat / 2)
	sLon := math.Sin(dLon / 2)
	h := sLat*sLat + math.Cos(lat1)*math.Cos(lat2)*sLon*sLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadius * c
}
