package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pulse_server/models"
)

// newTestPairing returns a service whose run loop effectively never fires,
// so tests drive Tick directly.
func newTestPairing(random func() float64) *PairingService {
	p := NewPairingService()
	p.SearchTick = time.Hour
	p.ConnectedTick = time.Hour
	p.Random = random
	return p
}

func never() float64  { return 0.0 }
func always() float64 { return 0.99 }

func TestPairingStartsIdle(t *testing.T) {
	p := newTestPairing(never)
	phase, timer := p.Status()
	require.Equal(t, models.PhaseIdle, phase)
	require.Equal(t, 0, timer)

	// Ticking while idle changes nothing
	require.Equal(t, models.PhaseIdle, p.Tick())
	_, timer = p.Status()
	require.Equal(t, 0, timer)
}

func TestPairingStartOnlyFromIdle(t *testing.T) {
	p := newTestPairing(never)

	require.True(t, p.Start())
	require.False(t, p.Start(), "start from searching must be rejected")

	phase, _ := p.Status()
	require.Equal(t, models.PhaseSearching, phase)
	require.True(t, p.Cancel())

	phase, _ = p.Status()
	require.Equal(t, models.PhaseIdle, phase)
}

func TestPairingSearchTimerCountsUp(t *testing.T) {
	p := newTestPairing(never)
	require.True(t, p.Start())

	last := 0
	for i := 0; i < 10; i++ {
		require.Equal(t, models.PhaseSearching, p.Tick())
		_, timer := p.Status()
		require.GreaterOrEqual(t, timer, last, "search timer never decreases")
		last = timer
	}
	require.Equal(t, 10, last)
}

func TestPairingConnectResetsTimerToSessionLength(t *testing.T) {
	p := newTestPairing(always)
	require.True(t, p.Start())

	require.Equal(t, models.PhaseConnected, p.Tick())
	_, timer := p.Status()
	require.Equal(t, DefaultSessionLength, timer)
}

func TestPairingConnectedTimerCountsDown(t *testing.T) {
	p := newTestPairing(always)
	require.True(t, p.Start())
	require.Equal(t, models.PhaseConnected, p.Tick())

	last := DefaultSessionLength
	for i := 0; i < 5; i++ {
		require.Equal(t, models.PhaseConnected, p.Tick())
		_, timer := p.Status()
		require.LessOrEqual(t, timer, last, "connected timer never increases")
		last = timer
	}
	require.Equal(t, DefaultSessionLength-5, last)
}

func TestPairingConnectedNeverReachedFromIdle(t *testing.T) {
	p := newTestPairing(always)

	// Without a start, no amount of ticking leaves idle
	for i := 0; i < 20; i++ {
		require.Equal(t, models.PhaseIdle, p.Tick())
	}
}

func TestPairingEndFromConnected(t *testing.T) {
	p := newTestPairing(always)
	require.True(t, p.Start())
	require.Equal(t, models.PhaseConnected, p.Tick())

	require.False(t, p.Cancel(), "cancel only applies while searching")
	require.True(t, p.End())

	phase, timer := p.Status()
	require.Equal(t, models.PhaseIdle, phase)
	require.Equal(t, 0, timer)
}

func TestPairingSessionExpiresAtZero(t *testing.T) {
	p := newTestPairing(always)
	p.SessionLength = 2
	require.True(t, p.Start())
	require.Equal(t, models.PhaseConnected, p.Tick())

	require.Equal(t, models.PhaseConnected, p.Tick())
	require.Equal(t, models.PhaseIdle, p.Tick(), "countdown reaching zero ends the session")

	phase, timer := p.Status()
	require.Equal(t, models.PhaseIdle, phase)
	require.Equal(t, 0, timer)

	// Back to idle means a new session may start
	require.True(t, p.Start())
	require.True(t, p.Cancel())
}

func TestPairingNotifiesOnUpdate(t *testing.T) {
	p := newTestPairing(always)

	var phases []string
	p.OnUpdate = func(phase string, timer int) {
		phases = append(phases, phase)
	}

	require.True(t, p.Start())
	p.Tick()
	require.True(t, p.End())

	require.Equal(t, []string{
		models.PhaseSearching,
		models.PhaseConnected,
		models.PhaseIdle,
	}, phases)
}
