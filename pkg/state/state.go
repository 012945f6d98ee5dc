package state

import (
	gametypes "gamecore/pkg/game/types"
)

// StateManager provides shared access to the game state.
// Implementations must be thread-safe.
type StateManager interface {
	// Snapshot returns a copy of the current game state.
	Snapshot() gametypes.GameState
	// Commit atomically replaces the current game state with candidate.
	// The candidate is validated first; the current state is left
	// unchanged if validation fails.
	Commit(candidate gametypes.GameState) error
}
