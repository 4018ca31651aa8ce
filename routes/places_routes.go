package routes

import (
	"pulse_server/controllers"
	"pulse_server/services"

	"github.com/gorilla/mux"
)

// RegisterPlacesRoutes sets up routes for places discovery under /api/places
func RegisterPlacesRoutes(r *mux.Router, placesService *services.PlacesService) {
	controller := controllers.NewPlacesController(placesService)

	placesRouter := r.PathPrefix("/api/places").Subrouter()
	placesRouter.HandleFunc("/categories", controller.HandleCategories).Methods("GET")
	placesRouter.HandleFunc("", controller.HandleDiscover).Methods("GET")
}
