package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"pulse_server/services"
)

// ActionController struct
type ActionController struct {
	ActionService *services.ActionService
}

// NewActionController initializes the action controller
func NewActionController(service *services.ActionService) *ActionController {
	return &ActionController{ActionService: service}
}

// HandleRecentSwipes returns the latest journaled swipe decisions.
// With no journal configured the list is empty, not an error.
func (c *ActionController) HandleRecentSwipes(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	actions, err := c.ActionService.RecentSwipes(r.Context(), int32(limit))
	if err != nil {
		log.Printf("❌ Error fetching swipe journal: %v", err)
		http.Error(w, `{"error": "Failed to fetch swipe journal"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"enabled": c.ActionService.Enabled(),
		"actions": actions,
	})
}
