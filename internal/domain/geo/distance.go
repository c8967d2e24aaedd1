package geo

import (
	"math"

	"github.com/roamly/tourguide-backend/internal/domain/entities"
)

const statuteMilesPerNauticalMile = 1.15077945

// Distance returns the great-circle distance between two points in statute
// miles, computed with the spherical law of cosines. This is the single
// distance metric used everywhere in the service: proximity checks, nearby
// sorting and reported distances all go through it.
func Distance(from, to entities.Location) float64 {
	lat1 := toRadians(from.Latitude)
	lon1 := toRadians(from.Longitude)
	lat2 := toRadians(to.Latitude)
	lon2 := toRadians(to.Longitude)

	cosAngle := math.Sin(lat1)*math.Sin(lat2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon1-lon2)
	// Rounding can push the value a hair outside [-1, 1], which would make
	// Acos return NaN for identical points.
	cosAngle = math.Max(-1, math.Min(1, cosAngle))

	nauticalMiles := 60 * toDegrees(math.Acos(cosAngle))
	return statuteMilesPerNauticalMile * nauticalMiles
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func toDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
