package routes

import (
	"pulse_server/controllers"
	"pulse_server/services"

	"github.com/gorilla/mux"
)

// RegisterPairingRoutes sets up routes for speed-match operations under /api/speedmatch
func RegisterPairingRoutes(r *mux.Router, pairingService *services.PairingService) {
	controller := controllers.NewPairingController(pairingService)

	pairingRouter := r.PathPrefix("/api/speedmatch").Subrouter()
	pairingRouter.HandleFunc("/status", controller.HandleStatus).Methods("GET")
	pairingRouter.HandleFunc("/start", controller.HandleStart).Methods("POST")
	pairingRouter.HandleFunc("/cancel", controller.HandleCancel).Methods("POST")
	pairingRouter.HandleFunc("/end", controller.HandleEnd).Methods("POST")
}
