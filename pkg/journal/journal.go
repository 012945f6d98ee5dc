package journal

import (
	"time"

	"github.com/google/uuid"
)

// Entry records one processed action. Both accepted and rejected
// actions are journaled.
type Entry struct {
	ID        string                 `json:"id"`
	Timestamp int64                  `json:"timestamp"`
	Kind      string                 `json:"kind"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Accepted  bool                   `json:"accepted"`
	Reason    string                 `json:"reason,omitempty"`
}

// NewEntry creates a journal entry for a processed action.
func NewEntry(kind string, payload map[string]interface{}, accepted bool, reason string) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UnixMilli(),
		Kind:      kind,
		Payload:   payload,
		Accepted:  accepted,
		Reason:    reason,
	}
}
