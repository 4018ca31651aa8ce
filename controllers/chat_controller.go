package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"pulse_server/services"
)

// ChatController struct
type ChatController struct {
	ChatService       *services.ChatService
	ProfileService    *services.ProfileService
	EnrichmentService *services.EnrichmentService
}

// NewChatController initializes the chat controller
func NewChatController(chat *services.ChatService, profiles *services.ProfileService, enrichment *services.EnrichmentService) *ChatController {
	return &ChatController{ChatService: chat, ProfileService: profiles, EnrichmentService: enrichment}
}

// HandleListSessions returns all chat sessions in creation order
func (c *ChatController) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.ChatService.ListSessions())
}

// HandleGetMessages returns the message sequence for a session
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	messages := c.ChatService.GetMessages(sessionID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// HandleSendMessage appends a message to a session
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var request struct {
		Text   string `json:"text"`
		FromMe bool   `json:"fromMe"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.Text == "" {
		http.Error(w, `{"error": "text is required"}`, http.StatusBadRequest)
		return
	}

	message, err := c.ChatService.AppendMessage(sessionID, request.Text, request.FromMe)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			http.Error(w, `{"error": "Chat session not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("❌ Failed to send message: %v", err)
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(message)
}

// HandleMarkRead clears the unread counter for a session
func (c *ChatController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	if err := c.ChatService.MarkRead(sessionID); err != nil {
		http.Error(w, `{"error": "Chat session not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleIcebreaker suggests an opener for a session using the peer's bio.
// Always succeeds: the enrichment service degrades to fixed fallbacks.
func (c *ChatController) HandleIcebreaker(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	session, err := c.ChatService.GetSession(sessionID)
	if err != nil {
		http.Error(w, `{"error": "Chat session not found"}`, http.StatusNotFound)
		return
	}

	bio := ""
	if profile, err := c.ProfileService.Get(session.ProfileID); err == nil {
		bio = profile.Bio
	}

	suggestion := c.EnrichmentService.SuggestIcebreaker(r.Context(), bio, session.Name)
	log.Printf("✨ Icebreaker suggested for session %s", sessionID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"suggestion": suggestion})
}
