package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"pulse_server/models"
	"pulse_server/services"
)

// DeckController struct
type DeckController struct {
	DeckService   *services.DeckService
	ActionService *services.ActionService
}

// NewDeckController initializes the deck controller
func NewDeckController(deck *services.DeckService, actions *services.ActionService) *DeckController {
	return &DeckController{DeckService: deck, ActionService: actions}
}

// HandleGetCurrent returns the profile at the head of the deck.
// The profile is null once the deck is exhausted.
func (c *DeckController) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"profile":   nil,
		"remaining": c.DeckService.Remaining(),
	}
	if profile, ok := c.DeckService.Current(); ok {
		response["profile"] = profile
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleSwipe schedules removal of the current head
func (c *DeckController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Decision string `json:"decision"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if !models.ValidDecision(request.Decision) {
		http.Error(w, `{"error": "decision must be pass, like or superlike"}`, http.StatusBadRequest)
		return
	}

	// Capture the head before the swipe for journal bookkeeping
	profile, ok := c.DeckService.Current()

	accepted := c.DeckService.Swipe(request.Decision)
	if accepted && ok && c.ActionService.Enabled() {
		// Journal writes never block the swipe response
		go c.ActionService.RecordSwipe(context.Background(), profile.ID, request.Decision)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "success",
		"accepted": accepted,
	})
}

// HandleReset restores the deck to its original candidate sequence
func (c *DeckController) HandleReset(w http.ResponseWriter, r *http.Request) {
	c.DeckService.Reset()
	log.Printf("🔄 Deck reset requested, %d profiles remaining", c.DeckService.Remaining())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "success",
		"remaining": c.DeckService.Remaining(),
	})
}
