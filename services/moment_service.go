package services

import (
	"errors"
	"sync"

	"pulse_server/models"
)

// ErrMomentNotFound is returned when a moment id is unknown
var ErrMomentNotFound = errors.New("moment not found")

// MomentService keeps the in-memory moments feed
type MomentService struct {
	mu      sync.Mutex
	order   []string
	moments map[string]*models.Moment
}

// NewMomentService seeds the feed with the given moments
func NewMomentService(seed []models.Moment) *MomentService {
	s := &MomentService{moments: make(map[string]*models.Moment, len(seed))}
	for i := range seed {
		moment := seed[i]
		s.order = append(s.order, moment.ID)
		s.moments[moment.ID] = &moment
	}
	return s
}

// List returns the feed in creation order
func (s *MomentService) List() []models.Moment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Moment, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.moments[id])
	}
	return out
}

// Like increments the like counter and returns the updated moment
func (s *MomentService) Like(id string) (models.Moment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	moment, ok := s.moments[id]
	if !ok {
		return models.Moment{}, ErrMomentNotFound
	}
	moment.Likes++
	return *moment, nil
}
