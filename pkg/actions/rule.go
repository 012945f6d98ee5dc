package actions

import (
	"sync"

	gametypes "gamecore/pkg/game/types"
)

// Rule computes a candidate game state from the current state and an
// action payload, or rejects the action by returning an error.
type Rule interface {
	Apply(current gametypes.GameState, payload map[string]interface{}) (gametypes.GameState, error)
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(current gametypes.GameState, payload map[string]interface{}) (gametypes.GameState, error)

func (f RuleFunc) Apply(current gametypes.GameState, payload map[string]interface{}) (gametypes.GameState, error) {
	return f(current, payload)
}

// NoopRule accepts any action and leaves the state unchanged.
type NoopRule struct{}

func (NoopRule) Apply(current gametypes.GameState, _ map[string]interface{}) (gametypes.GameState, error) {
	return current, nil
}

// Registry maps action kinds to rules. Kinds without a registered rule
// resolve to a NoopRule, so unknown actions succeed without changing
// state. Registration is the extension point for future decision logic.
type Registry struct {
	lock  sync.RWMutex
	rules map[string]Rule
}

func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
	}
}

// Register binds a rule to an action kind, replacing any previous rule.
func (r *Registry) Register(kind string, rule Rule) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.rules[kind] = rule
}

// Resolve returns the rule for the given kind.
func (r *Registry) Resolve(kind string) Rule {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if rule, ok := r.rules[kind]; ok {
		return rule
	}
	return NoopRule{}
}
