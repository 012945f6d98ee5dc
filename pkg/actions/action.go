package actions

import (
	gametypes "gamecore/pkg/game/types"
)

// Action is a host-originated request to change the game state.
// Actions are transient values: consumed by a Processor and discarded.
type Action struct {
	// Kind identifies the rule that handles the action
	Kind string
	// Payload is an opaque mapping of rule parameters, may be nil
	Payload map[string]interface{}
}

// Outcome reports the result of applying an action.
type Outcome struct {
	// Accepted is true if the action was applied
	Accepted bool
	// Snapshot is the game state after the action, set iff accepted
	Snapshot gametypes.GameState
	// Reason describes the rejection, set iff not accepted
	Reason string
}
