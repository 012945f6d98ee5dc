package state

import (
	"fmt"

	gametypes "gamecore/pkg/game/types"
)

// Validate checks a candidate game state against the state invariants.
// Violations are rejected, never clamped, so callers observe failures
// instead of silently corrected values.
func Validate(candidate gametypes.GameState) error {
	switch candidate.Status {
	case gametypes.GameStatusReady, gametypes.GameStatusBusy, gametypes.GameStatusError:
	default:
		return &InvariantViolation{
			Field:  "status",
			Reason: fmt.Sprintf("unknown status %q", candidate.Status),
		}
	}

	if candidate.Player.Name == "" {
		return &InvariantViolation{
			Field:  "player.name",
			Reason: "name must not be empty",
		}
	}
	if candidate.Player.Health < gametypes.MinHealth || candidate.Player.Health > gametypes.MaxHealth {
		return &InvariantViolation{
			Field:  "player.health",
			Reason: "health out of bounds",
		}
	}
	if candidate.Player.Score < 0 {
		return &InvariantViolation{
			Field:  "player.score",
			Reason: "score must not be negative",
		}
	}

	return nil
}
