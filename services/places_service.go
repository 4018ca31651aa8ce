package services

import (
	"context"
	"log"

	"pulse_server/models"
)

// Place result sources
const (
	PlaceSourceLive   = "live"
	PlaceSourceSample = "sample"
)

// PlacesService backs the places-nearby screen: a fixed category list,
// static sample venues per category, and live maps-grounded results when
// the client supplies coordinates. Location denial simply means the client
// sends no coordinates and gets the samples.
type PlacesService struct {
	Enrichment *EnrichmentService
	categories []string
	samples    map[string][]models.Place
}

// NewPlacesService wires the enrichment gateway and the sample datasets
func NewPlacesService(enrichment *EnrichmentService, categories []string, samples map[string][]models.Place) *PlacesService {
	s := &PlacesService{
		Enrichment: enrichment,
		categories: append([]string(nil), categories...),
		samples:    make(map[string][]models.Place, len(samples)),
	}
	for category, places := range samples {
		s.samples[category] = append([]models.Place(nil), places...)
	}
	return s
}

// Categories returns the category names in display order
func (s *PlacesService) Categories() []string {
	return append([]string(nil), s.categories...)
}

// Discover returns venues for a category. Live results win when
// coordinates are present and the lookup yields anything; otherwise the
// static samples are returned (empty for an unknown category).
func (s *PlacesService) Discover(ctx context.Context, category string, lat, lng *float64) ([]models.Place, string) {
	if live := s.Enrichment.FindNearbyPlaces(ctx, category, lat, lng); len(live) > 0 {
		return live, PlaceSourceLive
	}

	sample, ok := s.samples[category]
	if !ok {
		log.Printf("🔍 No sample places for category %q", category)
		return []models.Place{}, PlaceSourceSample
	}
	return append([]models.Place(nil), sample...), PlaceSourceSample
}
