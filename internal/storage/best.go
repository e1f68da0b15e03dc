package storage

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// BestScoreKey is the slot the helix best score lives in.
const BestScoreKey = "helixBestScore"

// BestScoreSlot stores one best score as a base-10 string under a key.
// It implements core.BestScoreStore: failures are logged and never reach
// the caller, and a missing or unreadable value reads as 0.
type BestScoreSlot struct {
	store  *Store
	key    string
	logger *log.Logger
}

// NewBestScoreSlot binds a slot to key. A nil logger discards failures.
func NewBestScoreSlot(store *Store, key string, logger *log.Logger) *BestScoreSlot {
	return &BestScoreSlot{store: store, key: key, logger: logger}
}

// Load returns the stored best score, or 0 if none is usable.
func (b *BestScoreSlot) Load() int {
	raw, ok, err := b.store.Get(b.key)
	if err != nil {
		b.warn("best score read failed", "key", b.key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || score < 0 {
		b.warn("ignoring unreadable best score", "key", b.key, "value", raw)
		return 0
	}
	return score
}

// Save stores score if it beats the stored value.
func (b *BestScoreSlot) Save(score int) {
	if score <= b.Load() {
		return
	}
	if err := b.store.Set(b.key, strconv.Itoa(score)); err != nil {
		b.warn("best score write failed", "key", b.key, "score", score, "error", err)
		return
	}
	if b.logger != nil {
		b.logger.Debug("best score saved", "key", b.key, "score", score)
	}
}

// Reset clears the slot.
func (b *BestScoreSlot) Reset() error {
	return b.store.Delete(b.key)
}

func (b *BestScoreSlot) warn(msg string, keyvals ...any) {
	if b.logger != nil {
		b.logger.Warn(msg, keyvals...)
	}
}
