package survey

import (
	"math"

	"github.com/mihirwankhade10/skybound-survey-manager-backend/pkg/models"
)

// EarthRadiusMeters is Earth's radius for the Haversine calculation.
const EarthRadiusMeters = 6371008.8

// HaversineMeters calculates the great-circle distance between two
// [lng, lat] points in meters.
func HaversineMeters(lng1, lat1, lng2, lat2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

// PathLengthMeters sums the leg distances of a flight path. Points without a
// full coordinate pair are skipped.
func PathLengthMeters(path []models.GeoPoint) float64 {
	var total float64
	var prev *models.GeoPoint
	for i := range path {
		p := &path[i]
		if len(p.Coordinates) < 2 {
			continue
		}
		if prev != nil {
			total += HaversineMeters(
				prev.Coordinates[0], prev.Coordinates[1],
				p.Coordinates[0], p.Coordinates[1],
			)
		}
		prev = p
	}
	return total
}
