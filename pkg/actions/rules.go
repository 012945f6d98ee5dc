package actions

import (
	"fmt"

	gametypes "gamecore/pkg/game/types"
)

// Built-in rules demonstrating payload-driven state transitions. None
// of them are registered by default; hosts opt in via RegisterBuiltins.
// Rules do not clamp: out-of-bounds results are caught at commit time.

const (
	ActionKindAdjustHealth = "adjust_health"
	ActionKindAddScore     = "add_score"
	ActionKindRename       = "rename"
)

// RegisterBuiltins registers the built-in rules with the registry.
func RegisterBuiltins(r *Registry) {
	r.Register(ActionKindAdjustHealth, RuleFunc(AdjustHealth))
	r.Register(ActionKindAddScore, RuleFunc(AddScore))
	r.Register(ActionKindRename, RuleFunc(Rename))
}

// AdjustHealth adds the payload's "amount" to the player's health.
func AdjustHealth(current gametypes.GameState, payload map[string]interface{}) (gametypes.GameState, error) {
	amount, err := intParam(payload, "amount")
	if err != nil {
		return gametypes.GameState{}, err
	}
	current.Player.Health += amount
	return current, nil
}

// AddScore adds the payload's "amount" to the player's score.
func AddScore(current gametypes.GameState, payload map[string]interface{}) (gametypes.GameState, error) {
	amount, err := intParam(payload, "amount")
	if err != nil {
		return gametypes.GameState{}, err
	}
	current.Player.Score += amount
	return current, nil
}

// Rename sets the player's name to the payload's "name".
func Rename(current gametypes.GameState, payload map[string]interface{}) (gametypes.GameState, error) {
	name, err := stringParam(payload, "name")
	if err != nil {
		return gametypes.GameState{}, err
	}
	current.Player.Name = name
	return current, nil
}

// intParam reads an integer payload parameter. JSON-decoded payloads
// carry numbers as float64, so both forms are accepted.
func intParam(payload map[string]interface{}, key string) (int, error) {
	value, ok := payload[key]
	if !ok {
		return 0, fmt.Errorf("missing payload parameter %q", key)
	}
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("payload parameter %q must be a number", key)
	}
}

func stringParam(payload map[string]interface{}, key string) (string, error) {
	value, ok := payload[key]
	if !ok {
		return "", fmt.Errorf("missing payload parameter %q", key)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("payload parameter %q must be a string", key)
	}
	return s, nil
}
