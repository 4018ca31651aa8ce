package controllers

import (
	"encoding/json"
	"net/http"

	"pulse_server/services"
)

// PairingController struct
type PairingController struct {
	PairingService *services.PairingService
}

// NewPairingController initializes the pairing controller
func NewPairingController(service *services.PairingService) *PairingController {
	return &PairingController{PairingService: service}
}

// HandleStatus returns the current speed-match phase and timer
func (c *PairingController) HandleStatus(w http.ResponseWriter, r *http.Request) {
	phase, timer := c.PairingService.Status()
	writePairingStatus(w, phase, timer, true)
}

// HandleStart begins searching for a match. Starting from a non-idle
// phase is ignored, not an error.
func (c *PairingController) HandleStart(w http.ResponseWriter, r *http.Request) {
	started := c.PairingService.Start()
	phase, timer := c.PairingService.Status()
	writePairingStatus(w, phase, timer, started)
}

// HandleCancel aborts a search
func (c *PairingController) HandleCancel(w http.ResponseWriter, r *http.Request) {
	cancelled := c.PairingService.Cancel()
	phase, timer := c.PairingService.Status()
	writePairingStatus(w, phase, timer, cancelled)
}

// HandleEnd finishes a connected session
func (c *PairingController) HandleEnd(w http.ResponseWriter, r *http.Request) {
	ended := c.PairingService.End()
	phase, timer := c.PairingService.Status()
	writePairingStatus(w, phase, timer, ended)
}

func writePairingStatus(w http.ResponseWriter, phase string, timer int, applied bool) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"phase":   phase,
		"timer":   timer,
		"applied": applied,
	})
}
