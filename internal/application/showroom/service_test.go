package showroom

import (
	"context"
	"testing"

	"github.com/metrovolt-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_ReturnsAllShowrooms(t *testing.T) {
	out := NewService().List(context.Background())
	assert.Len(t, out, len(showrooms))
}

func TestNearest_SortsByDistanceAndCapsAtThree(t *testing.T) {
	// Coordinates in downtown Austin: the Austin showroom must come first.
	out, err := NewService().Nearest(context.Background(), "", 30.2672, -97.7431, 0)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "sr-austin", out[0].ShowroomID)
	assert.Less(t, out[0].Distance, 5.0)
	assert.LessOrEqual(t, out[0].Distance, out[1].Distance)
	assert.LessOrEqual(t, out[1].Distance, out[2].Distance)
}

func TestNearest_CityFallback(t *testing.T) {
	out, err := NewService().Nearest(context.Background(), "portland", 0, 0, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "sr-portland", out[0].ShowroomID)
}

func TestNearest_NoLocation_BadRequest(t *testing.T) {
	_, err := NewService().Nearest(context.Background(), "", 0, 0, 0)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestNearest_UnknownCity_NotFound(t *testing.T) {
	_, err := NewService().Nearest(context.Background(), "Atlantis", 0, 0, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_UnknownID_NotFound(t *testing.T) {
	_, err := NewService().Get(context.Background(), "sr-nowhere")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHaversine_KnownDistance(t *testing.T) {
	// Austin to Denver is roughly 1240 km great-circle.
	d := haversineKm(30.2672, -97.7431, 39.7392, -104.9903)
	assert.InDelta(t, 1240, d, 40)
}
