package repositories

import (
	"context"

	gametypes "gamecore/pkg/game/types"
	"gamecore/pkg/journal"
)

type Repository interface {
	Close(ctx context.Context) error
	// SaveSnapshot persists a point-in-time copy of the game state.
	SaveSnapshot(ctx context.Context, timestamp int64, gameState gametypes.GameState) error
	// LoadLatestSnapshot returns the most recently persisted snapshot.
	// Returns ErrNotFound if no snapshot has been saved.
	LoadLatestSnapshot(ctx context.Context) (*gametypes.GameState, error)
	// AppendJournal persists a processed action record.
	AppendJournal(ctx context.Context, entry *journal.Entry) error
	// ListJournal returns the most recent journal entries, newest first.
	ListJournal(ctx context.Context, limit int) ([]*journal.Entry, error)
}
