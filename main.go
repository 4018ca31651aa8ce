package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"pulse_server/routes"
	"pulse_server/services"
	"pulse_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	ctx := context.Background()

	// Initialize the enrichment gateway (runs in fallback mode without a key)
	log.Println("Initializing Gemini enrichment service...")
	enrichmentService := services.NewEnrichmentService(ctx)

	// Initialize in-memory services from the demo seed data
	deckService := services.NewDeckService(services.DefaultProfiles())
	pairingService := services.NewPairingService()
	chatService := services.NewChatService(services.DefaultChatSessions(), services.DefaultMessages())
	profileService := services.NewProfileService(append(services.DefaultProfiles(), services.SelfProfile()))
	placesService := services.NewPlacesService(enrichmentService, services.PlaceCategories(), services.SamplePlaces())
	momentService := services.NewMomentService(services.DefaultMoments())

	// Optional swipe journal, enabled only when a table is configured
	actionService := &services.ActionService{}
	if table := os.Getenv("SWIPE_LOG_TABLE"); table != "" {
		client, err := services.NewDynamoDBClient(ctx)
		if err != nil {
			log.Printf("⚠️ Swipe journal disabled: %v", err)
		} else {
			actionService = &services.ActionService{Dynamo: &services.DynamoService{Client: client}, Table: table}
			log.Printf("✅ Swipe journal enabled on table %s", table)
		}
	}

	// Socket hub pushes deck and speed-match updates to clients
	hub := socket.NewHub()
	deckService.OnAdvance = hub.BroadcastDeck
	pairingService.OnUpdate = hub.BroadcastPairing
	go hub.Run()
	defer hub.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Pulse")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterDeckRoutes(r, deckService, actionService)
	routes.RegisterPairingRoutes(r, pairingService)
	routes.RegisterChatRoutes(r, chatService, profileService, enrichmentService)
	routes.RegisterUserProfileRoutes(r, profileService, enrichmentService)
	routes.RegisterPlacesRoutes(r, placesService)
	routes.RegisterMomentRoutes(r, momentService)
	routes.RegisterActionRoutes(r, actionService)

	// Optional photo upload presigning
	if os.Getenv("S3_BUCKET_NAME") != "" {
		mediaService, err := services.NewMediaService(ctx)
		if err != nil {
			log.Printf("⚠️ Photo upload disabled: %v", err)
		} else {
			routes.RegisterMediaRoutes(r, mediaService)
			log.Println("✅ Photo upload presigning enabled")
		}
	}

	// Mount the socket server
	r.Handle("/socket.io/", hub.Server)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
