package services

import "pulse_server/models"

// Demo seed datasets. Engines take their seed data as constructor
// parameters, so everything here is plain fixtures the wiring in main
// passes in; nothing reads these at package level.

// DefaultProfiles returns the demo candidate profiles for the deck
func DefaultProfiles() []models.Profile {
	return []models.Profile{
		{
			ID:       "1",
			Name:     "Clara",
			Age:      28,
			Headline: "Coffee & Code ☕️",
			Bio:      "Software engineer by day, amateur chef by night. Looking for someone who knows the difference between Java and JavaScript.",
			Photos:   []string{"https://picsum.photos/400/600?random=1"},
			Verified: true,
			Distance: 3,
		},
		{
			ID:       "2",
			Name:     "Lucas",
			Age:      31,
			Headline: "Musician & Dreamer",
			Bio:      "I play guitar and piano. Let's make some music together or just chill and listen to vinyls.",
			Photos:   []string{"https://picsum.photos/400/600?random=2"},
			Verified: false,
			Distance: 12,
		},
		{
			ID:       "3",
			Name:     "Sophia",
			Age:      24,
			Headline: "Adventure awaits 🌍",
			Bio:      "Always planning the next trip. Hiking, surfing, and finding the best tacos in town.",
			Photos:   []string{"https://picsum.photos/400/600?random=3"},
			Verified: true,
			Distance: 5,
		},
	}
}

// SelfProfile returns the demo account's own editable profile
func SelfProfile() models.Profile {
	return models.Profile{
		ID:       "me",
		Name:     "You",
		Age:      25,
		Headline: "Edit Profile",
		Bio:      "Just here to see how this app works.",
		Photos:   []string{"https://picsum.photos/400/600?grayscale"},
		Verified: true,
		Distance: 0,
	}
}

// DefaultChatSessions returns the demo conversation threads
func DefaultChatSessions() []models.ChatSession {
	return []models.ChatSession{
		{ID: "1", ProfileID: "1", Name: "Clara", Avatar: "https://picsum.photos/400/600?random=1", LastMessage: "See you then!", Unread: 0},
		{ID: "2", ProfileID: "2", Name: "Lucas", Avatar: "https://picsum.photos/400/600?random=2", LastMessage: "Haha exactly.", Unread: 2},
	}
}

// DefaultMessages returns the demo message histories keyed by session id
func DefaultMessages() map[string][]models.Message {
	return map[string][]models.Message{
		"1": {
			{MessageID: "m1", SessionID: "1", Text: "Hey Clara! Love the bio.", FromMe: true, Timestamp: 1633020000000},
			{MessageID: "m2", SessionID: "1", Text: "Thanks! Are you a dev too?", FromMe: false, Timestamp: 1633020100000},
		},
		"2": {
			{MessageID: "m3", SessionID: "2", Text: "That guitar solo was insane.", FromMe: true, Timestamp: 1633030000000},
		},
	}
}

// DefaultMoments returns the demo moments feed
func DefaultMoments() []models.Moment {
	return []models.Moment{
		{ID: "mo1", User: "Clara", Avatar: "https://picsum.photos/100/100?random=11", Text: "Sunday farmers market haul 🥬", TimeAgo: "2h", Likes: 14},
		{ID: "mo2", User: "Lucas", Avatar: "https://picsum.photos/100/100?random=12", Text: "New song out on all platforms!", TimeAgo: "5h", Likes: 32},
		{ID: "mo3", User: "Sophia", Avatar: "https://picsum.photos/100/100?random=13", Text: "Sunrise hike, totally worth the 5am alarm.", TimeAgo: "1d", Likes: 21},
	}
}

// PlaceCategories returns the discovery categories in display order
func PlaceCategories() []string {
	return []string{
		"Barzinhos",
		"Restaurantes",
		"Baladas",
		"Motéis",
		"Sexy Shops",
		"Lojas de Roupas",
		"Presentes Especiais",
	}
}

// SamplePlaces returns the static venues shown when no live results exist
func SamplePlaces() map[string][]models.Place {
	return map[string][]models.Place{
		"Barzinhos": {
			{Name: "Boteco do Zé", Rating: 4.6},
			{Name: "Bar Alto Astral", Rating: 4.8},
		},
		"Restaurantes": {
			{Name: "Cantina da Vila", Rating: 4.9},
			{Name: "Steak House Prime", Rating: 4.7},
		},
		"Baladas": {
			{Name: "Club 21", Rating: 4.8},
			{Name: "Neon Night", Rating: 4.5},
		},
		"Motéis": {
			{Name: "Motel Eclipse", Rating: 4.9},
			{Name: "Paradise Motel", Rating: 4.6},
		},
		"Sexy Shops": {
			{Name: "Hot Dreams", Rating: 4.7},
			{Name: "Sensual House", Rating: 4.8},
		},
		"Lojas de Roupas": {
			{Name: "Urban Style", Rating: 4.5},
			{Name: "Lux Fashion", Rating: 4.9},
		},
		"Presentes Especiais": {
			{Name: "Gift & Love", Rating: 4.7},
			{Name: "Presentes Deluxe", Rating: 4.9},
		},
	}
}
