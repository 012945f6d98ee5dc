package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	gametypes "gamecore/pkg/game/types"
	"github.com/klauspost/compress/zstd"
)

// encodeSnapshot marshals a game state to zstd-compressed JSON for
// storage as a single blob.
func encodeSnapshot(gameState gametypes.GameState) ([]byte, error) {
	b, err := json.Marshal(gameState)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress snapshot: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// decodeSnapshot reverses encodeSnapshot.
func decodeSnapshot(data []byte) (*gametypes.GameState, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed snapshot: %v", err)
	}

	gameState := &gametypes.GameState{}
	if err := json.Unmarshal(b, gameState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %v", err)
	}

	return gameState, nil
}
