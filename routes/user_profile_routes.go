package routes

import (
	"pulse_server/controllers"
	"pulse_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile operations under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, profileService *services.ProfileService, enrichmentService *services.EnrichmentService) {
	controller := controllers.NewUserProfileController(profileService, enrichmentService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.HandleListProfiles).Methods("GET")
	profileRouter.HandleFunc("/{id}", controller.HandleGetProfile).Methods("GET")
	profileRouter.HandleFunc("/{id}", controller.HandleUpdateProfile).Methods("PATCH")
	profileRouter.HandleFunc("/{id}/analyze", controller.HandleAnalyzeBio).Methods("POST")
	profileRouter.HandleFunc("/{id}/photos", controller.HandleAddPhotos).Methods("POST")
	profileRouter.HandleFunc("/{id}/photos/{index}", controller.HandleRemovePhoto).Methods("DELETE")
	profileRouter.HandleFunc("/{id}/photos/{index}/primary", controller.HandleSetPrimaryPhoto).Methods("POST")
}
