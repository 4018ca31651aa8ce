package services

import (
	"log"
	"sync"
	"time"

	"pulse_server/models"
)

// DefaultSwipeDelay is how long a swiped card stays the current head so
// the client can play its exit animation before the deck advances.
const DefaultSwipeDelay = 200 * time.Millisecond

// DeckService owns the ordered queue of candidate profiles shown on the
// home screen. Swiping removes exactly the head, after a short deferred
// interval; the remaining order never changes.
type DeckService struct {
	mu      sync.Mutex
	seed    []models.Profile
	queue   []models.Profile
	pending *time.Timer
	swiping bool

	// SwipeDelay and Schedule are injectable for deterministic tests.
	SwipeDelay time.Duration
	Schedule   func(d time.Duration, f func()) *time.Timer

	// OnAdvance is invoked after the deck head changes (swipe completed
	// or reset). A nil head means the deck is exhausted.
	OnAdvance func(head *models.Profile, remaining int)
}

// NewDeckService creates a deck seeded with the given candidate profiles.
// The seed is copied; Reset restores it regardless of prior swipes.
func NewDeckService(seed []models.Profile) *DeckService {
	s := &DeckService{
		seed:       append([]models.Profile(nil), seed...),
		SwipeDelay: DefaultSwipeDelay,
		Schedule:   time.AfterFunc,
	}
	s.queue = append([]models.Profile(nil), s.seed...)
	return s
}

// Current returns the profile at the head of the deck, or false when the
// deck has been fully consumed. While a swipe is pending the head that was
// active when Swipe was called is still returned.
func (s *DeckService) Current() (models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return models.Profile{}, false
	}
	return s.queue[0], true
}

// Remaining returns how many profiles are left in the deck
func (s *DeckService) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Swipe schedules removal of the current head. The decision never affects
// ordering; it exists for the caller's own bookkeeping. Returns false when
// the swipe was ignored (empty deck, or a removal is already pending).
func (s *DeckService) Swipe(decision string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		log.Println("🃏 Swipe ignored: deck is empty")
		return false
	}
	if s.swiping {
		// Debounce: one removal per window, no double-consumption.
		return false
	}
	s.swiping = true
	s.pending = s.Schedule(s.SwipeDelay, s.finishSwipe)
	log.Printf("🃏 Swipe %q on profile %s, removal in %v", decision, s.queue[0].ID, s.SwipeDelay)
	return true
}

// finishSwipe pops the head once the exit-animation window has elapsed
func (s *DeckService) finishSwipe() {
	s.mu.Lock()
	if !s.swiping {
		s.mu.Unlock()
		return
	}
	s.swiping = false
	s.pending = nil
	if len(s.queue) > 0 {
		s.queue = s.queue[1:]
	}
	head, remaining, notify := s.headLocked(), len(s.queue), s.OnAdvance
	s.mu.Unlock()

	if notify != nil {
		notify(head, remaining)
	}
}

// Reset restores the deck to its original candidate sequence and cancels
// any pending deferred removal.
func (s *DeckService) Reset() {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.swiping = false
	s.queue = append([]models.Profile(nil), s.seed...)
	head, remaining, notify := s.headLocked(), len(s.queue), s.OnAdvance
	s.mu.Unlock()

	log.Printf("🔄 Deck reset, %d profiles restored", remaining)
	if notify != nil {
		notify(head, remaining)
	}
}

func (s *DeckService) headLocked() *models.Profile {
	if len(s.queue) == 0 {
		return nil
	}
	head := s.queue[0]
	return &head
}
