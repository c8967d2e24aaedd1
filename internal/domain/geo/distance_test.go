package geo

import (
	"testing"

	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func TestDistanceIdenticalPointsIsZero(t *testing.T) {
	points := []entities.Location{
		{Latitude: 0, Longitude: 0},
		{Latitude: 33.817595, Longitude: -117.922008},
		{Latitude: -85.05112878, Longitude: 179.999},
		{Latitude: 61.218887, Longitude: -149.877502},
	}
	for _, p := range points {
		assert.InDelta(t, 0, Distance(p, p), 1e-9)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := entities.Location{Latitude: 40.741112, Longitude: -73.989723}
	b := entities.Location{Latitude: 37.819929, Longitude: -122.478255}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistanceKnownValue(t *testing.T) {
	// One degree of latitude along a meridian is 60 nautical miles.
	a := entities.Location{Latitude: 0, Longitude: 0}
	b := entities.Location{Latitude: 1, Longitude: 0}
	assert.InDelta(t, 60*1.15077945, Distance(a, b), 1e-6)
}

func TestDistanceCrossCountry(t *testing.T) {
	// New York to San Francisco is roughly 2,570 statute miles.
	ny := entities.Location{Latitude: 40.7128, Longitude: -74.0060}
	sf := entities.Location{Latitude: 37.7749, Longitude: -122.4194}
	d := Distance(ny, sf)
	assert.Greater(t, d, 2400.0)
	assert.Less(t, d, 2700.0)
}
