package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// Coordinate bounds
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// DefaultPrecision is the geohash precision used for location events
const DefaultPrecision uint = 9

// ValidCoordinates reports whether the pair is within latitude/longitude bounds
func ValidCoordinates(latitude, longitude float64) bool {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return false
	}
	return latitude >= MinLatitude && latitude <= MaxLatitude &&
		longitude >= MinLongitude && longitude <= MaxLongitude
}

// Encode converts a coordinate pair to a geohash string
func Encode(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, DefaultPrecision)
}

// Distance calculates the distance between two points in kilometers using
// the haversine formula
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371.0

	rLat1 := lat1 * math.Pi / 180.0
	rLon1 := lon1 * math.Pi / 180.0
	rLat2 := lat2 * math.Pi / 180.0
	rLon2 := lon2 * math.Pi / 180.0

	dLat := rLat2 - rLat1
	dLon := rLon2 - rLon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
