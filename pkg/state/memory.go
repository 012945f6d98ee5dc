package state

import (
	"sync"

	gametypes "gamecore/pkg/game/types"
)

type InMemoryStateManager struct {
	lock      sync.RWMutex
	gameState gametypes.GameState
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{
		gameState: gametypes.NewGameState(),
	}
}

func (m *InMemoryStateManager) Snapshot() gametypes.GameState {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.gameState.Copy()
}

func (m *InMemoryStateManager) Commit(candidate gametypes.GameState) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if err := Validate(candidate); err != nil {
		return err
	}

	m.gameState = candidate.Copy()
	return nil
}
