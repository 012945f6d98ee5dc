package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	got := NewGameState()

	assert.Equal(t, GameStatusReady, got.Status)
	assert.Equal(t, DefaultPlayerName, got.Player.Name)
	assert.Equal(t, MaxHealth, got.Player.Health)
	assert.Equal(t, 0, got.Player.Score)
}

func TestGameState_CopyIsIndependent(t *testing.T) {
	original := NewGameState()

	copied := original.Copy()
	copied.Status = GameStatusError
	copied.Player.Health = 1

	assert.Equal(t, GameStatusReady, original.Status)
	assert.Equal(t, MaxHealth, original.Player.Health)
}

func TestGameState_JSONShape(t *testing.T) {
	b, err := json.Marshal(NewGameState())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ready","player":{"name":"Player","health":100,"score":0}}`, string(b))
}
