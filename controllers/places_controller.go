package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pulse_server/services"
)

// PlacesController struct
type PlacesController struct {
	PlacesService *services.PlacesService
}

// NewPlacesController initializes the places controller
func NewPlacesController(service *services.PlacesService) *PlacesController {
	return &PlacesController{PlacesService: service}
}

// HandleCategories returns the discovery categories in display order
func (c *PlacesController) HandleCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"categories": c.PlacesService.Categories()})
}

// HandleDiscover returns venues for a category. lat/lng are optional; the
// client omits them when location permission was denied and gets samples.
func (c *PlacesController) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		http.Error(w, `{"error": "category is required"}`, http.StatusBadRequest)
		return
	}

	lat := parseCoord(r.URL.Query().Get("lat"))
	lng := parseCoord(r.URL.Query().Get("lng"))

	places, source := c.PlacesService.Discover(r.Context(), category, lat, lng)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"places": places,
		"source": source,
	})
}

func parseCoord(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
