package types

// GameStatus is the lifecycle status of the game state.
type GameStatus string

const (
	GameStatusReady GameStatus = "ready"
	GameStatusBusy  GameStatus = "busy"
	GameStatusError GameStatus = "error"
)

type GameState struct {
	// Status is the lifecycle status of the game
	Status GameStatus `json:"status"`
	// Player is the player state owned by this game state
	Player PlayerState `json:"player"`
}

// NewGameState returns the default game state a session starts with.
func NewGameState() GameState {
	return GameState{
		Status: GameStatusReady,
		Player: NewPlayerState(),
	}
}

// Copy returns a copy of the game state
func (g GameState) Copy() GameState {
	return GameState{
		Status: g.Status,
		Player: g.Player.Copy(),
	}
}

// Equal returns true if the game state is equal to the other game state
func (g GameState) Equal(other GameState) bool {
	return g.Status == other.Status && g.Player.Equal(other.Player)
}
