package routes

import (
	"pulse_server/controllers"
	"pulse_server/services"

	"github.com/gorilla/mux"
)

// RegisterDeckRoutes sets up routes for deck operations under /api/deck
func RegisterDeckRoutes(r *mux.Router, deckService *services.DeckService, actionService *services.ActionService) {
	controller := controllers.NewDeckController(deckService, actionService)

	deckRouter := r.PathPrefix("/api/deck").Subrouter()
	deckRouter.HandleFunc("/current", controller.HandleGetCurrent).Methods("GET")
	deckRouter.HandleFunc("/swipe", controller.HandleSwipe).Methods("POST")
	deckRouter.HandleFunc("/reset", controller.HandleReset).Methods("POST")
}
