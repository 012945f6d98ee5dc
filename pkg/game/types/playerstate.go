package types

const (
	// MinHealth is the lowest health a player can have
	MinHealth = 0
	// MaxHealth is the highest health a player can have
	MaxHealth = 100

	DefaultPlayerName = "Player"
)

type PlayerState struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	Score  int    `json:"score"`
}

// NewPlayerState returns the default player state.
func NewPlayerState() PlayerState {
	return PlayerState{
		Name:   DefaultPlayerName,
		Health: MaxHealth,
		Score:  0,
	}
}

// Copy returns a copy of the player state
func (p PlayerState) Copy() PlayerState {
	return PlayerState{
		Name:   p.Name,
		Health: p.Health,
		Score:  p.Score,
	}
}

// Equal returns true if the player state is equal to the other player state
func (p PlayerState) Equal(other PlayerState) bool {
	return p.Name == other.Name &&
		p.Health == other.Health &&
		p.Score == other.Score
}
