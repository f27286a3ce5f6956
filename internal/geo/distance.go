// Package geo holds the great-circle distance used for cardholder/merchant spread.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance in kilometres between two points
// given in decimal degrees.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := 0.5 - math.Cos(dLat)/2 +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*(1-math.Cos(dLon))/2

	// rounding can push a a hair outside [0, 1]
	a = math.Min(math.Max(a, 0), 1)

	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

// RoundKm rounds a distance to two decimals for display.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
