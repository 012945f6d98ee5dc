package actions

import (
	"sync"

	gametypes "gamecore/pkg/game/types"
	"gamecore/pkg/journal"
	"gamecore/pkg/log"
	"gamecore/pkg/queue"
	"gamecore/pkg/state"
)

// Processor turns an action plus the current state into a new candidate
// state and asks the state manager to commit it.
type Processor struct {
	registry     *Registry
	stateManager state.StateManager
	journalQueue queue.Queue
	onCommit     func(gametypes.GameState)
	lock         sync.Mutex
}

// NewProcessorOptions contains options for creating a new Processor.
type NewProcessorOptions struct {
	Registry     *Registry
	StateManager state.StateManager
	// JournalQueue receives a journal.Entry per processed action, optional
	JournalQueue queue.Queue
	// OnCommit is called with the new state after each successful commit, optional
	OnCommit func(gametypes.GameState)
}

func NewProcessor(opts NewProcessorOptions) *Processor {
	return &Processor{
		registry:     opts.Registry,
		stateManager: opts.StateManager,
		journalQueue: opts.JournalQueue,
		onCommit:     opts.OnCommit,
	}
}

// Apply runs an action through its rule and commits the result.
// Applies are serialized so the snapshot-compute-commit sequence never
// interleaves with another apply and loses an update. All failures are
// reported as a structured outcome; none are fatal.
func (p *Processor) Apply(action Action) Outcome {
	p.lock.Lock()
	defer p.lock.Unlock()

	current := p.stateManager.Snapshot()
	rule := p.registry.Resolve(action.Kind)

	candidate, err := rule.Apply(current, action.Payload)
	if err != nil {
		log.Debug("Action %q rejected by rule: %v", action.Kind, err)
		return p.finish(action, Outcome{Reason: err.Error()})
	}

	if err := p.stateManager.Commit(candidate); err != nil {
		reason := err.Error()
		if violation, ok := err.(*state.InvariantViolation); ok {
			reason = violation.Reason
		}
		log.Debug("Action %q rejected on commit: %v", action.Kind, err)
		return p.finish(action, Outcome{Reason: reason})
	}

	if p.onCommit != nil {
		p.onCommit(candidate)
	}
	return p.finish(action, Outcome{Accepted: true, Snapshot: candidate})
}

func (p *Processor) finish(action Action, outcome Outcome) Outcome {
	if p.journalQueue != nil {
		entry := journal.NewEntry(action.Kind, action.Payload, outcome.Accepted, outcome.Reason)
		if err := p.journalQueue.Enqueue(entry); err != nil {
			log.Warn("Failed to enqueue journal entry for action %q: %v", action.Kind, err)
		}
	}
	return outcome
}
