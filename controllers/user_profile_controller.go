package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"pulse_server/models"
	"pulse_server/services"
)

// UserProfileController struct
type UserProfileController struct {
	ProfileService    *services.ProfileService
	EnrichmentService *services.EnrichmentService
}

// NewUserProfileController initializes the profile controller
func NewUserProfileController(profiles *services.ProfileService, enrichment *services.EnrichmentService) *UserProfileController {
	return &UserProfileController{ProfileService: profiles, EnrichmentService: enrichment}
}

// HandleListProfiles returns all profiles
func (c *UserProfileController) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.ProfileService.List())
}

// HandleGetProfile returns a single profile by id
func (c *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := c.ProfileService.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleUpdateProfile applies the editable text fields
func (c *UserProfileController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.ProfileService.Update(mux.Vars(r)["id"], update)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleAddPhotos appends photo references to a profile
func (c *UserProfileController) HandleAddPhotos(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Photos []string `json:"photos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || len(request.Photos) == 0 {
		http.Error(w, `{"error": "photos is required"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.ProfileService.AddPhotos(mux.Vars(r)["id"], request.Photos)
	if err != nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleRemovePhoto deletes the photo at the given position
func (c *UserProfileController) HandleRemovePhoto(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, `{"error": "Invalid photo index"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.ProfileService.RemovePhoto(vars["id"], index)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleSetPrimaryPhoto moves the photo at the given position to the front
func (c *UserProfileController) HandleSetPrimaryPhoto(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		http.Error(w, `{"error": "Invalid photo index"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.ProfileService.SetPrimaryPhoto(vars["id"], index)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	log.Printf("🖼️ Primary photo for profile %s set to index %d", vars["id"], index)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleAnalyzeBio returns the AI compatibility summary for a profile's bio
func (c *UserProfileController) HandleAnalyzeBio(w http.ResponseWriter, r *http.Request) {
	profile, err := c.ProfileService.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	analysis := c.EnrichmentService.AnalyzeBio(r.Context(), profile.Bio)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"analysis": analysis})
}
