package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"pulse_server/models"
)

// ErrProfileNotFound is returned when a profile id is unknown
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService keeps the in-memory profiles and applies the explicit
// edit operations: text fields, photo add/remove, primary selection.
type ProfileService struct {
	mu       sync.Mutex
	order    []string
	profiles map[string]*models.Profile
}

// NewProfileService seeds the store with the given profiles
func NewProfileService(seed []models.Profile) *ProfileService {
	s := &ProfileService{profiles: make(map[string]*models.Profile, len(seed))}
	for i := range seed {
		profile := seed[i]
		profile.Photos = append([]string(nil), profile.Photos...)
		s.order = append(s.order, profile.ID)
		s.profiles[profile.ID] = &profile
	}
	return s
}

// Get returns one profile by id
func (s *ProfileService) Get(id string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[id]
	if !ok {
		return models.Profile{}, ErrProfileNotFound
	}
	return s.copyLocked(profile), nil
}

// List returns all profiles in creation order
func (s *ProfileService) List() []models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Profile, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.copyLocked(s.profiles[id]))
	}
	return out
}

// Update applies the editable text fields. Nil fields are left unchanged.
func (s *ProfileService) Update(id string, update models.ProfileUpdate) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[id]
	if !ok {
		return models.Profile{}, ErrProfileNotFound
	}

	if update.Name != nil {
		if *update.Name == "" {
			return models.Profile{}, errors.New("name cannot be empty")
		}
		profile.Name = *update.Name
	}
	if update.Age != nil {
		if *update.Age <= 0 {
			return models.Profile{}, errors.New("age must be positive")
		}
		profile.Age = *update.Age
	}
	if update.Headline != nil {
		profile.Headline = *update.Headline
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}

	log.Printf("✅ Profile %s updated", id)
	return s.copyLocked(profile), nil
}

// AddPhotos appends photo references to a profile
func (s *ProfileService) AddPhotos(id string, photos []string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[id]
	if !ok {
		return models.Profile{}, ErrProfileNotFound
	}
	profile.Photos = append(profile.Photos, photos...)
	return s.copyLocked(profile), nil
}

// RemovePhoto deletes the photo at the given position
func (s *ProfileService) RemovePhoto(id string, index int) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[id]
	if !ok {
		return models.Profile{}, ErrProfileNotFound
	}
	if index < 0 || index >= len(profile.Photos) {
		return models.Profile{}, fmt.Errorf("photo index %d out of range", index)
	}
	profile.Photos = append(profile.Photos[:index], profile.Photos[index+1:]...)
	return s.copyLocked(profile), nil
}

// SetPrimaryPhoto moves the photo at the given position to the front.
// The relative order of the other photos is preserved; Photos[0] is what
// the card renders.
func (s *ProfileService) SetPrimaryPhoto(id string, index int) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[id]
	if !ok {
		return models.Profile{}, ErrProfileNotFound
	}
	if index < 0 || index >= len(profile.Photos) {
		return models.Profile{}, fmt.Errorf("photo index %d out of range", index)
	}

	selected := profile.Photos[index]
	rest := append(profile.Photos[:index:index], profile.Photos[index+1:]...)
	profile.Photos = append([]string{selected}, rest...)
	return s.copyLocked(profile), nil
}

func (s *ProfileService) copyLocked(profile *models.Profile) models.Profile {
	out := *profile
	out.Photos = append([]string(nil), profile.Photos...)
	return out
}
