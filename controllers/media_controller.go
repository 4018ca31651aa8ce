package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"pulse_server/services"
)

// MediaController struct
type MediaController struct {
	MediaService *services.MediaService
}

// NewMediaController initializes the media controller
func NewMediaController(service *services.MediaService) *MediaController {
	return &MediaController{MediaService: service}
}

// HandleGenerateUploadURL generates a presigned URL for photo uploads
func (c *MediaController) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, `{"error": "Missing required fields"}`, http.StatusBadRequest)
		return
	}

	url, key, err := c.MediaService.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("❌ Error generating pre-signed URL: %v", err)
		http.Error(w, `{"error": "Failed to generate pre-signed URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}

// HandleGenerateReadURL generates a presigned URL for reading a photo
func (c *MediaController) HandleGenerateReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	url, err := c.MediaService.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		log.Printf("❌ Error generating read pre-signed URL: %v", err)
		http.Error(w, `{"error": "Failed to generate read pre-signed URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
