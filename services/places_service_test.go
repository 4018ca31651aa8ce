package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pulse_server/models"
)

func newTestPlaces() *PlacesService {
	samples := map[string][]models.Place{
		"Restaurantes": {
			{Name: "Cantina da Vila", Rating: 4.9},
			{Name: "Steak House Prime", Rating: 4.7},
		},
	}
	return NewPlacesService(offlineEnrichment(), []string{"Barzinhos", "Restaurantes"}, samples)
}

func TestPlacesCategoriesOrder(t *testing.T) {
	s := newTestPlaces()
	require.Equal(t, []string{"Barzinhos", "Restaurantes"}, s.Categories())
}

func TestDiscoverFallsBackToSamples(t *testing.T) {
	s := newTestPlaces()

	places, source := s.Discover(context.Background(), "Restaurantes", nil, nil)
	require.Equal(t, PlaceSourceSample, source)
	require.Len(t, places, 2)
	require.Equal(t, "Cantina da Vila", places[0].Name)
}

func TestDiscoverWithCoordinatesStillDegradesOffline(t *testing.T) {
	s := newTestPlaces()
	lat, lng := -23.55, -46.63

	// No Gemini client configured: live lookup yields nothing, samples win
	places, source := s.Discover(context.Background(), "Restaurantes", &lat, &lng)
	require.Equal(t, PlaceSourceSample, source)
	require.Len(t, places, 2)
}

func TestDiscoverUnknownCategoryIsEmpty(t *testing.T) {
	s := newTestPlaces()

	places, source := s.Discover(context.Background(), "Museus", nil, nil)
	require.Equal(t, PlaceSourceSample, source)
	require.Empty(t, places)
}
