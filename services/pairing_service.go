package services

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"pulse_server/models"
)

// Speed-match defaults: search ticks fast counting up, a connect fires
// when the random draw exceeds the threshold, the connected countdown
// runs one unit per second from the session length.
const (
	DefaultSearchTick       = 100 * time.Millisecond
	DefaultConnectedTick    = time.Second
	DefaultConnectThreshold = 0.95
	DefaultSessionLength    = 300 // 5 minutes at one unit per second
)

// PairingService manages the speed-match lifecycle:
// idle → searching → connected → idle. At most one tick schedule runs at
// a time; every transition cancels the schedule of the state being left.
type PairingService struct {
	mu    sync.Mutex
	phase string
	timer int
	stop  chan struct{}

	// Injectable knobs for deterministic tests
	Random           func() float64
	SearchTick       time.Duration
	ConnectedTick    time.Duration
	ConnectThreshold float64
	SessionLength    int

	// OnUpdate is invoked after every phase or timer change
	OnUpdate func(phase string, timer int)
}

// NewPairingService creates an idle speed-match session manager
func NewPairingService() *PairingService {
	return &PairingService{
		phase:            models.PhaseIdle,
		Random:           rand.Float64,
		SearchTick:       DefaultSearchTick,
		ConnectedTick:    DefaultConnectedTick,
		ConnectThreshold: DefaultConnectThreshold,
		SessionLength:    DefaultSessionLength,
	}
}

// Status returns the current phase and timer value. The timer counts up
// while searching, down while connected, and is zero while idle.
func (s *PairingService) Status() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase, s.timer
}

// Start begins searching. Only valid from idle; any other phase is
// ignored and Start returns false.
func (s *PairingService) Start() bool {
	s.mu.Lock()
	if s.phase != models.PhaseIdle {
		s.mu.Unlock()
		log.Println("⚡ Start ignored: session already active")
		return false
	}
	s.phase = models.PhaseSearching
	s.timer = 0
	stop := make(chan struct{})
	s.stop = stop
	notify := s.OnUpdate
	s.mu.Unlock()

	log.Println("⚡ Speed match: searching")
	if notify != nil {
		notify(models.PhaseSearching, 0)
	}
	go s.run(stop)
	return true
}

// Cancel aborts a search and returns to idle
func (s *PairingService) Cancel() bool {
	return s.endSession(models.PhaseSearching)
}

// End finishes a connected session and returns to idle
func (s *PairingService) End() bool {
	return s.endSession(models.PhaseConnected)
}

func (s *PairingService) endSession(from string) bool {
	s.mu.Lock()
	if s.phase != from {
		s.mu.Unlock()
		return false
	}
	s.phase = models.PhaseIdle
	s.timer = 0
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	notify := s.OnUpdate
	s.mu.Unlock()

	log.Printf("⚡ Speed match: %s → idle", from)
	if notify != nil {
		notify(models.PhaseIdle, 0)
	}
	return true
}

// Tick advances the session one step for the current phase and returns
// the phase after the step. Searching counts the timer up and draws for a
// connect; connected counts down and auto-ends at zero. Idle is a no-op.
// The run loop drives this on real timers; tests call it directly.
func (s *PairingService) Tick() string {
	s.mu.Lock()
	switch s.phase {
	case models.PhaseSearching:
		s.timer++
		if s.Random() > s.ConnectThreshold {
			s.phase = models.PhaseConnected
			s.timer = s.SessionLength
			log.Println("⚡ Speed match: connected!")
		}
	case models.PhaseConnected:
		s.timer--
		if s.timer <= 0 {
			// Countdown exhausted: the blind-chat window is over.
			s.phase = models.PhaseIdle
			s.timer = 0
			if s.stop != nil {
				close(s.stop)
				s.stop = nil
			}
			log.Println("⚡ Speed match: session expired")
		}
	}
	phase, timer, notify := s.phase, s.timer, s.OnUpdate
	s.mu.Unlock()

	if notify != nil {
		notify(phase, timer)
	}
	return phase
}

// run drives Tick on the wall clock until the session leaves its phase
func (s *PairingService) run(stop chan struct{}) {
	ticker := time.NewTicker(s.SearchTick)
	defer ticker.Stop()
	prev := models.PhaseSearching
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			phase := s.Tick()
			if phase == models.PhaseIdle {
				return
			}
			if phase != prev {
				if phase == models.PhaseConnected {
					ticker.Reset(s.ConnectedTick)
				} else {
					ticker.Reset(s.SearchTick)
				}
				prev = phase
			}
		}
	}
}
