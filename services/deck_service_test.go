package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pulse_server/models"
)

// manualScheduler captures deferred callbacks so tests complete swipes
// without waiting on the wall clock
type manualScheduler struct {
	pending []func()
}

func (m *manualScheduler) schedule(d time.Duration, f func()) *time.Timer {
	m.pending = append(m.pending, f)
	return time.NewTimer(time.Hour)
}

func (m *manualScheduler) fireNext() {
	if len(m.pending) == 0 {
		return
	}
	f := m.pending[0]
	m.pending = m.pending[1:]
	f()
}

func testProfiles(n int) []models.Profile {
	profiles := make([]models.Profile, n)
	for i := range profiles {
		profiles[i] = models.Profile{
			ID:     fmt.Sprintf("p%d", i+1),
			Name:   fmt.Sprintf("Profile %d", i+1),
			Age:    20 + i,
			Photos: []string{fmt.Sprintf("https://example.com/%d.jpg", i+1)},
		}
	}
	return profiles
}

func newTestDeck(seed []models.Profile) (*DeckService, *manualScheduler) {
	deck := NewDeckService(seed)
	sched := &manualScheduler{}
	deck.Schedule = sched.schedule
	return deck, sched
}

func TestDeckConsumesInSeedOrder(t *testing.T) {
	seed := testProfiles(3)
	deck, sched := newTestDeck(seed)

	for i, want := range seed {
		current, ok := deck.Current()
		require.True(t, ok, "deck should have a head after %d removals", i)
		require.Equal(t, want.ID, current.ID)

		require.True(t, deck.Swipe(models.SwipeLike))
		sched.fireNext()
	}

	_, ok := deck.Current()
	require.False(t, ok, "deck should be exhausted")
	require.Equal(t, 0, deck.Remaining())
}

func TestDeckHeadStableDuringSwipeWindow(t *testing.T) {
	seed := testProfiles(2)
	deck, sched := newTestDeck(seed)

	require.True(t, deck.Swipe(models.SwipePass))

	// The removal is deferred: the swiped head is still current
	current, ok := deck.Current()
	require.True(t, ok)
	require.Equal(t, seed[0].ID, current.ID)

	sched.fireNext()
	current, ok = deck.Current()
	require.True(t, ok)
	require.Equal(t, seed[1].ID, current.ID)
}

func TestDeckSwipeDebounce(t *testing.T) {
	deck, sched := newTestDeck(testProfiles(3))

	require.True(t, deck.Swipe(models.SwipeLike))
	require.False(t, deck.Swipe(models.SwipeSuperLike), "second swipe in the window must be a no-op")

	sched.fireNext()
	require.Equal(t, 2, deck.Remaining(), "exactly one profile removed")
	require.Empty(t, sched.pending, "no second removal scheduled")
}

func TestDeckSwipeEmptyIsNoOp(t *testing.T) {
	deck, sched := newTestDeck(nil)

	require.False(t, deck.Swipe(models.SwipeLike))
	require.Empty(t, sched.pending)

	_, ok := deck.Current()
	require.False(t, ok)
}

func TestDeckResetRestoresSeed(t *testing.T) {
	seed := testProfiles(3)
	deck, sched := newTestDeck(seed)

	for i := 0; i < 2; i++ {
		require.True(t, deck.Swipe(models.SwipePass))
		sched.fireNext()
	}
	require.Equal(t, 1, deck.Remaining())

	deck.Reset()
	current, ok := deck.Current()
	require.True(t, ok)
	require.Equal(t, seed[0].ID, current.ID)
	require.Equal(t, len(seed), deck.Remaining())
}

func TestDeckResetCancelsPendingRemoval(t *testing.T) {
	seed := testProfiles(2)
	deck, sched := newTestDeck(seed)

	require.True(t, deck.Swipe(models.SwipeLike))
	deck.Reset()

	// The stale deferred removal must not consume a restored profile
	sched.fireNext()
	require.Equal(t, len(seed), deck.Remaining())
	current, ok := deck.Current()
	require.True(t, ok)
	require.Equal(t, seed[0].ID, current.ID)
}

func TestDeckNotifiesOnAdvance(t *testing.T) {
	seed := testProfiles(2)
	deck, sched := newTestDeck(seed)

	var gotHead *models.Profile
	gotRemaining := -1
	deck.OnAdvance = func(head *models.Profile, remaining int) {
		gotHead = head
		gotRemaining = remaining
	}

	require.True(t, deck.Swipe(models.SwipeLike))
	sched.fireNext()
	require.NotNil(t, gotHead)
	require.Equal(t, seed[1].ID, gotHead.ID)
	require.Equal(t, 1, gotRemaining)

	require.True(t, deck.Swipe(models.SwipeLike))
	sched.fireNext()
	require.Nil(t, gotHead, "exhausted deck reports a nil head")
	require.Equal(t, 0, gotRemaining)
}
