package highscore

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Tracker holds the best score for the process and persists improvements.
// It is safe for concurrent use by several game sessions.
type Tracker struct {
	mu     sync.Mutex
	store  Store
	best   int
	logger *log.Logger
}

// NewTracker reads the best score once from store.
// A failed read is logged at debug level and counts as 0.
func NewTracker(store Store, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.Default()
	}
	t := &Tracker{store: store, logger: logger}
	best, err := store.Load()
	if err != nil {
		logger.Debug("high score unavailable, starting from 0", "err", err)
		best = 0
	}
	t.best = best
	return t
}

// Best returns the best score seen so far.
func (t *Tracker) Best() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.best
}

// Submit records a finished round. A score above the best replaces it and is
// persisted; the return value reports whether that happened. A failed write
// is logged and the in-memory best still moves.
func (t *Tracker) Submit(score int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if score <= t.best {
		return false
	}
	t.best = score
	if err := t.store.Save(score); err != nil {
		t.logger.Error("failed to save high score", "score", score, "err", err)
		return true
	}
	t.logger.Info("new high score", "score", score)
	return true
}
