package routes

import (
	"pulse_server/controllers"
	"pulse_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up routes for the swipe journal under /api/actions
func RegisterActionRoutes(r *mux.Router, actionService *services.ActionService) {
	controller := controllers.NewActionController(actionService)

	actionRouter := r.PathPrefix("/api/actions").Subrouter()
	actionRouter.HandleFunc("/recent", controller.HandleRecentSwipes).Methods("GET")
}
