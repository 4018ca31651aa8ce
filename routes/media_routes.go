package routes

import (
	"pulse_server/controllers"
	"pulse_server/services"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up routes for photo upload presigning under /api/media
func RegisterMediaRoutes(r *mux.Router, mediaService *services.MediaService) {
	controller := controllers.NewMediaController(mediaService)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()
	mediaRouter.HandleFunc("/generate-presigned-url", controller.HandleGenerateUploadURL).Methods("POST")
	mediaRouter.HandleFunc("/get-presigned-read-url", controller.HandleGenerateReadURL).Methods("POST")
}
