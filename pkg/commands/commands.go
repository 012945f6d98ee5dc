package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"gamecore/pkg/actions"
	"gamecore/pkg/state"
)

// Command names exposed to the host. The JSON shapes of their requests
// and results are a compatibility contract with external front ends and
// must not change.
const (
	GetGameState    = "get_game_state"
	UpdateGameState = "update_game_state"
)

const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
)

// UpdateGameStateRequest is the argument payload for update_game_state.
// Payload is optional and passed through to the action's rule.
type UpdateGameStateRequest struct {
	Action  string                 `json:"action"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// UpdateGameStateResult is the result payload for update_game_state.
type UpdateGameStateResult struct {
	Action string `json:"action"`
	Result string `json:"result"`
	Reason string `json:"reason,omitempty"`
}

// NewGameDispatcher creates a dispatcher with the game state commands
// registered.
func NewGameDispatcher(stateManager state.StateManager, processor *actions.Processor) *Dispatcher {
	d := NewDispatcher()
	d.Handle(GetGameState, HandleGetGameState(stateManager))
	d.Handle(UpdateGameState, HandleUpdateGameState(processor))
	return d
}

// HandleGetGameState returns a handler that reports the current game
// state. It never fails.
func HandleGetGameState(stateManager state.StateManager) Handler {
	return func(_ context.Context, _ json.RawMessage) (interface{}, error) {
		return stateManager.Snapshot(), nil
	}
}

// HandleUpdateGameState returns a handler that applies an action to the
// game state. Rejections are part of the result, not a handler error.
func HandleUpdateGameState(processor *actions.Processor) Handler {
	return func(_ context.Context, request json.RawMessage) (interface{}, error) {
		var req UpdateGameStateRequest
		if err := json.Unmarshal(request, &req); err != nil {
			return nil, fmt.Errorf("failed to decode request: %v", err)
		}

		outcome := processor.Apply(actions.Action{
			Kind:    req.Action,
			Payload: req.Payload,
		})

		result := UpdateGameStateResult{
			Action: req.Action,
			Result: ResultSuccess,
		}
		if !outcome.Accepted {
			result.Result = ResultRejected
			result.Reason = outcome.Reason
		}
		return result, nil
	}
}
