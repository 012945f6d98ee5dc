package workers

import (
	"context"
	"time"

	"gamecore/pkg/log"
	"gamecore/pkg/repositories"
	"gamecore/pkg/state"
)

type SnapshotWorker struct {
	repository   repositories.Repository
	stateManager state.StateManager
	interval     time.Duration
}

type NewSnapshotWorkerOptions struct {
	Repository   repositories.Repository
	StateManager state.StateManager
	Interval     time.Duration
}

// NewSnapshotWorker creates a new SnapshotWorker.
// The worker periodically saves the game state to the repository.
func NewSnapshotWorker(opts NewSnapshotWorkerOptions) *SnapshotWorker {
	return &SnapshotWorker{
		repository:   opts.Repository,
		stateManager: opts.StateManager,
		interval:     opts.Interval,
	}
}

func (w *SnapshotWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			w.saveSnapshot(ctx, t)
		}
	}
}

// Restore loads the latest persisted snapshot into the state manager.
// A missing snapshot is not an error; a snapshot that no longer
// validates is logged and ignored, leaving the default state in place.
func (w *SnapshotWorker) Restore(ctx context.Context) error {
	gameState, err := w.repository.LoadLatestSnapshot(ctx)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil
		}
		return err
	}

	if err := w.stateManager.Commit(*gameState); err != nil {
		log.Warn("Ignoring persisted snapshot: %v", err)
		return nil
	}

	log.Info("Restored game state from snapshot")
	return nil
}

func (w *SnapshotWorker) saveSnapshot(ctx context.Context, t time.Time) {
	gameState := w.stateManager.Snapshot()
	if err := w.repository.SaveSnapshot(ctx, t.UnixMilli(), gameState); err != nil {
		log.Error("Failed to save snapshot: %v", err)
	}
}
