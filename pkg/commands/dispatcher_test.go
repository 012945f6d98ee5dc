package commands

import (
	"context"
	"encoding/json"
	"testing"

	"gamecore/pkg/actions"
	gametypes "gamecore/pkg/game/types"
	"gamecore/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(setup func(r *actions.Registry)) (*Dispatcher, state.StateManager) {
	stateManager := state.NewInMemoryStateManager()
	registry := actions.NewRegistry()
	if setup != nil {
		setup(registry)
	}
	processor := actions.NewProcessor(actions.NewProcessorOptions{
		Registry:     registry,
		StateManager: stateManager,
	})
	return NewGameDispatcher(stateManager, processor), stateManager
}

func TestDispatcher_GetGameState(t *testing.T) {
	dispatcher, _ := newTestDispatcher(nil)

	result, err := dispatcher.Invoke(context.Background(), GetGameState, nil)
	require.NoError(t, err)

	// the initial state serialized with the exact field names and
	// nesting front ends depend on
	assert.JSONEq(t, `{"status":"ready","player":{"name":"Player","health":100,"score":0}}`, string(result))
}

func TestDispatcher_UpdateGameState(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(r *actions.Registry)
		request    string
		wantResult string
	}{
		{
			name:       "unregistered action echoes success",
			request:    `{"action":"heal"}`,
			wantResult: `{"action":"heal","result":"success"}`,
		},
		{
			name: "rejected action reports the reason",
			setup: func(r *actions.Registry) {
				r.Register("overheal", actions.RuleFunc(func(current gametypes.GameState, _ map[string]interface{}) (gametypes.GameState, error) {
					current.Player.Health = 150
					return current, nil
				}))
			},
			request:    `{"action":"overheal"}`,
			wantResult: `{"action":"overheal","result":"rejected","reason":"health out of bounds"}`,
		},
		{
			name: "payload is passed through to the rule",
			setup: func(r *actions.Registry) {
				actions.RegisterBuiltins(r)
			},
			request:    `{"action":"rename","payload":{"name":"Bob"}}`,
			wantResult: `{"action":"rename","result":"success"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher, _ := newTestDispatcher(tt.setup)

			result, err := dispatcher.Invoke(context.Background(), UpdateGameState, json.RawMessage(tt.request))
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantResult, string(result))
		})
	}
}

func TestDispatcher_UpdateGameStateLeavesStateUnchangedOnNoop(t *testing.T) {
	dispatcher, stateManager := newTestDispatcher(nil)
	before := stateManager.Snapshot()

	_, err := dispatcher.Invoke(context.Background(), UpdateGameState, json.RawMessage(`{"action":"heal"}`))
	require.NoError(t, err)

	assert.True(t, stateManager.Snapshot().Equal(before))
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher, _ := newTestDispatcher(nil)

	_, err := dispatcher.Invoke(context.Background(), "open_devtools", nil)
	require.Error(t, err)
	assert.True(t, IsUnknownCommand(err))
	assert.Equal(t, "unknown command: open_devtools", err.Error())
}

func TestDispatcher_MalformedRequest(t *testing.T) {
	dispatcher, _ := newTestDispatcher(nil)

	_, err := dispatcher.Invoke(context.Background(), UpdateGameState, json.RawMessage(`not json`))
	require.Error(t, err)
	assert.False(t, IsUnknownCommand(err))
}
