package gps

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAttractionsReturnsFullCatalog(t *testing.T) {
	p := NewSimulatedProvider(0)

	attractions, err := p.ListAttractions(context.Background())
	require.NoError(t, err)
	assert.Len(t, attractions, 26)

	seen := make(map[string]bool)
	for _, a := range attractions {
		assert.NotEmpty(t, a.AttractionName)
		assert.False(t, seen[a.AttractionName], "duplicate attraction %s", a.AttractionName)
		seen[a.AttractionName] = true
	}
}

func TestListAttractionsReturnsCopy(t *testing.T) {
	p := NewSimulatedProvider(0)

	first, err := p.ListAttractions(context.Background())
	require.NoError(t, err)
	first[0].AttractionName = "mutated"

	second, err := p.ListAttractions(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].AttractionName)
}

func TestCurrentLocationWithinBounds(t *testing.T) {
	p := NewSimulatedProvider(0)
	userID := uuid.New()

	for i := 0; i < 50; i++ {
		visited, err := p.CurrentLocation(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, visited.UserID)
		assert.GreaterOrEqual(t, visited.Location.Latitude, minLatitude)
		assert.LessOrEqual(t, visited.Location.Latitude, maxLatitude)
		assert.GreaterOrEqual(t, visited.Location.Longitude, -180.0)
		assert.LessOrEqual(t, visited.Location.Longitude, 180.0)
		assert.False(t, visited.TimeVisited.IsZero())
	}
}

func TestCurrentLocationHonorsCancelledContext(t *testing.T) {
	p := NewSimulatedProvider(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.CurrentLocation(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}
