package models

// ✅ Swipe decisions (pure caller bookkeeping, never reorder the deck)
const (
	SwipePass      = "pass"
	SwipeLike      = "like"
	SwipeSuperLike = "superlike"
)

// ✅ Speed-match phases
const (
	PhaseIdle      = "idle"
	PhaseSearching = "searching"
	PhaseConnected = "connected"
)

// ValidDecision reports whether d is a known swipe decision
func ValidDecision(d string) bool {
	switch d {
	case SwipePass, SwipeLike, SwipeSuperLike:
		return true
	}
	return false
}
