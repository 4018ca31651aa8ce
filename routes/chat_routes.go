package routes

import (
	"pulse_server/controllers"
	"pulse_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat operations under /api/chats
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, profileService *services.ProfileService, enrichmentService *services.EnrichmentService) {
	controller := controllers.NewChatController(chatService, profileService, enrichmentService)

	chatRouter := r.PathPrefix("/api/chats").Subrouter()
	chatRouter.HandleFunc("", controller.HandleListSessions).Methods("GET")
	chatRouter.HandleFunc("/{id}/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/{id}/messages", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/{id}/read", controller.HandleMarkRead).Methods("POST")
	chatRouter.HandleFunc("/{id}/icebreaker", controller.HandleIcebreaker).Methods("POST")
}
