package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pulse_server/services"
)

// MomentController struct
type MomentController struct {
	MomentService *services.MomentService
}

// NewMomentController initializes the moments controller
func NewMomentController(service *services.MomentService) *MomentController {
	return &MomentController{MomentService: service}
}

// HandleList returns the moments feed
func (c *MomentController) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.MomentService.List())
}

// HandleLike increments the like counter for a moment
func (c *MomentController) HandleLike(w http.ResponseWriter, r *http.Request) {
	moment, err := c.MomentService.Like(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, `{"error": "Moment not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(moment)
}
