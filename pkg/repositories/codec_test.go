package repositories

import (
	"testing"

	gametypes "gamecore/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCodecRoundTrip(t *testing.T) {
	gameState := gametypes.GameState{
		Status: gametypes.GameStatusBusy,
		Player: gametypes.PlayerState{Name: "Alice", Health: 73, Score: 9001},
	}

	blob, err := encodeSnapshot(gameState)
	require.NoError(t, err)
	assert.NotEmpty(t, blob)

	decoded, err := decodeSnapshot(blob)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(gameState))
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := decodeSnapshot([]byte("not a snapshot"))
	require.Error(t, err)
}
