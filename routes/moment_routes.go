package routes

import (
	"pulse_server/controllers"
	"pulse_server/services"

	"github.com/gorilla/mux"
)

// RegisterMomentRoutes sets up routes for the moments feed under /api/moments
func RegisterMomentRoutes(r *mux.Router, momentService *services.MomentService) {
	controller := controllers.NewMomentController(momentService)

	momentRouter := r.PathPrefix("/api/moments").Subrouter()
	momentRouter.HandleFunc("", controller.HandleList).Methods("GET")
	momentRouter.HandleFunc("/{id}/like", controller.HandleLike).Methods("POST")
}
