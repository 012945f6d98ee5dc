package workers

import (
	"context"
	"time"

	"gamecore/pkg/journal"
	"gamecore/pkg/log"
	"gamecore/pkg/queue"
	"gamecore/pkg/repositories"
)

type JournalWorker struct {
	repository   repositories.Repository
	journalQueue queue.Queue
	interval     time.Duration
}

type NewJournalWorkerOptions struct {
	Repository   repositories.Repository
	JournalQueue queue.Queue
	Interval     time.Duration
}

// NewJournalWorker creates a new JournalWorker.
// The worker drains processed action records from the journal queue and
// appends them to the repository.
func NewJournalWorker(opts NewJournalWorkerOptions) *JournalWorker {
	return &JournalWorker{
		repository:   opts.Repository,
		journalQueue: opts.JournalQueue,
		interval:     opts.Interval,
	}
}

func (w *JournalWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// final drain so processed actions are not lost on shutdown
			w.drain(context.WithoutCancel(ctx))
			return
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

func (w *JournalWorker) drain(ctx context.Context) {
	pending, err := w.journalQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read journal queue: %v", err)
		return
	}

	for _, item := range pending {
		entry, ok := item.(*journal.Entry)
		if !ok {
			log.Error("Unexpected item in journal queue: %T", item)
			continue
		}
		if err := w.repository.AppendJournal(ctx, entry); err != nil {
			log.Error("Failed to append journal entry %s: %v", entry.ID, err)
		}
	}
}
