package storage

import (
	"sync"
	"time"

	"github.com/jmallet/cv-builder/internal/schedule"
	"github.com/jmallet/cv-builder/internal/types"
)

// DefaultAutosaveDelay matches the editor's save debounce: bursts of
// edits collapse into one write after the typing pause.
const DefaultAutosaveDelay = 1 * time.Second

// Autosave debounces document writes to a Store. Each Notify replaces
// the pending snapshot; only the latest one is written.
type Autosave struct {
	store     *Store
	debouncer *schedule.Debouncer
	onError   func(error)

	mu      sync.Mutex
	pending *types.CVDocument
}

// NewAutosave wires a debounced writer over the store. onError, if
// non-nil, receives write failures; saves happen off the caller's
// goroutine so there is no return value to check.
func NewAutosave(store *Store, delay time.Duration, onError func(error)) *Autosave {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosave{
		store:     store,
		debouncer: schedule.NewDebouncer(delay),
		onError:   onError,
	}
}

// Notify schedules the snapshot to be saved after the debounce window.
func (a *Autosave) Notify(doc *types.CVDocument) {
	a.mu.Lock()
	a.pending = doc
	a.mu.Unlock()
	a.debouncer.Trigger(a.save)
}

// Flush writes any pending snapshot immediately.
func (a *Autosave) Flush() {
	a.debouncer.Flush()
}

// Close flushes the pending snapshot and stops the debouncer.
func (a *Autosave) Close() {
	a.debouncer.Flush()
	a.debouncer.Stop()
}

func (a *Autosave) save() {
	a.mu.Lock()
	doc := a.pending
	a.pending = nil
	a.mu.Unlock()
	if doc == nil {
		return
	}
	if err := a.store.Save(doc); err != nil && a.onError != nil {
		a.onError(err)
	}
}
