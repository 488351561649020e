package geo

import (
	"math"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

// earthRadiusKm is the fixed spherical-model radius used for all distances.
const earthRadiusKm = 6371

// DistanceKm calculates the great-circle distance between two coordinates
// using the Haversine formula. Returns distance in kilometers.
func DistanceKm(a, b types.Coordinate) float64 {
	// Convert degrees to radians
	lat1Rad := a.Latitude * math.Pi / 180
	lon1Rad := a.Longitude * math.Pi / 180
	lat2Rad := b.Latitude * math.Pi / 180
	lon2Rad := b.Longitude * math.Pi / 180

	// Differences
	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad

	// Haversine formula
	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
