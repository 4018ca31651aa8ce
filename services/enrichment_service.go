package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"

	"google.golang.org/genai"

	"pulse_server/models"
)

// EnrichmentModel is the Gemini model backing all enrichment calls
const EnrichmentModel = "gemini-2.5-flash"

// EnrichmentService is a stateless façade over the Gemini API. Every
// operation fails soft: with no API key, a service error, or an unusable
// response the caller always gets a defined fallback, never an error.
type EnrichmentService struct {
	client *genai.Client
	Model  string
	// Rating yields a random value in [0,1) used to synthesize place
	// ratings, since grounding chunks do not reliably carry one.
	// Injectable for tests.
	Rating func() float64
}

// NewEnrichmentService creates the Gemini client from GEMINI_API_KEY.
// A missing key is a normal state: the service runs in fallback mode.
func NewEnrichmentService(ctx context.Context) *EnrichmentService {
	s := &EnrichmentService{Model: EnrichmentModel, Rating: rand.Float64}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("⚠️ GEMINI_API_KEY not set, AI features disabled")
		return s
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		log.Printf("❌ Failed to create Gemini client: %v", err)
		return s
	}
	s.client = client
	log.Println("✅ Gemini client initialized")
	return s
}

// Enabled reports whether a Gemini client is configured
func (s *EnrichmentService) Enabled() bool {
	return s.client != nil
}

// SuggestIcebreaker returns a one-sentence opener for the given peer.
// Always returns a usable string.
func (s *EnrichmentService) SuggestIcebreaker(ctx context.Context, bio, name string) string {
	if s.client == nil {
		return "Hey! I saw your profile and thought it was cool."
	}

	prompt := fmt.Sprintf("You are an expert dating coach 'Wingman'. Generate a short, witty, and charming icebreaker message (max 1 sentence) to send to %s based on their bio: %q. Do not use hashtags.", name, bio)
	resp, err := s.client.Models.GenerateContent(ctx, s.Model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("❌ Gemini icebreaker error: %v", err)
		return fmt.Sprintf("Hey %s, how's it going?", name)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return fmt.Sprintf("Hey %s, your bio is interesting!", name)
	}
	return text
}

// AnalyzeBio returns a 3-bullet personality/compatibility summary
func (s *EnrichmentService) AnalyzeBio(ctx context.Context, bio string) string {
	if s.client == nil {
		return "Detailed compatibility analysis requires an API key."
	}

	prompt := fmt.Sprintf("Analyze this dating profile bio and give me a 3 bullet point summary of their likely personality traits and potential red/green flags. Keep it punchy and fun. Bio: %q", bio)
	resp, err := s.client.Models.GenerateContent(ctx, s.Model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("❌ Gemini analysis error: %v", err)
		return "Could not analyze bio at this time."
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "Analysis unavailable."
	}
	return text
}

// FindNearbyPlaces looks up notable venues of the given category around
// the given coordinates via a maps-grounded Gemini call. Returns nil
// without attempting a call when coordinates are absent or no client is
// configured, and nil on error or when no usable place survives parsing.
func (s *EnrichmentService) FindNearbyPlaces(ctx context.Context, category string, lat, lng *float64) []models.Place {
	if s.client == nil || lat == nil || lng == nil {
		return nil
	}

	prompt := fmt.Sprintf("Find 5 popular %s nearby.", category)
	resp, err := s.client.Models.GenerateContent(ctx, s.Model, genai.Text(prompt), placesRequestConfig(lat, lng))
	if err != nil {
		log.Printf("❌ Gemini maps error: %v", err)
		return nil
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	places := s.placesFromChunks(resp.Candidates[0].GroundingMetadata.GroundingChunks)
	if len(places) == 0 {
		return nil
	}
	log.Printf("📍 Found %d places for category %q", len(places), category)
	return places
}

// placesRequestConfig enables the maps grounding tool anchored at the
// given coordinates
func placesRequestConfig(lat, lng *float64) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
		ToolConfig: &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{Latitude: lat, Longitude: lng},
			},
		},
	}
}

// placesFromChunks converts maps grounding chunks into Place records,
// deduplicated by name with first occurrence winning.
func (s *EnrichmentService) placesFromChunks(chunks []*genai.GroundingChunk) []models.Place {
	var places []models.Place
	seen := map[string]bool{}
	for _, chunk := range chunks {
		if chunk == nil || chunk.Maps == nil || chunk.Maps.Title == "" {
			continue
		}
		if seen[chunk.Maps.Title] {
			continue
		}
		seen[chunk.Maps.Title] = true
		places = append(places, models.Place{
			Name:   chunk.Maps.Title,
			Rating: math.Round((4.0+s.Rating())*10) / 10,
			URI:    chunk.Maps.URI,
		})
	}
	return places
}
