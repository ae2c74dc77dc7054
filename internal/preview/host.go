// Package preview bridges the live-edited document to the external
// page renderer: it debounces edit bursts and memoizes rendered box
// trees so unrelated state changes never force a re-render.
package preview

import (
	"sync"
	"time"

	"github.com/jmallet/cv-builder/internal/layout"
	"github.com/jmallet/cv-builder/internal/schedule"
	"github.com/jmallet/cv-builder/internal/templates"
	"github.com/jmallet/cv-builder/internal/types"
)

// DefaultDebounce is the trailing delay applied to document edits
// before a render pass starts.
const DefaultDebounce = 500 * time.Millisecond

// Host keeps the visible preview in sync with the document at a
// bounded refresh rate. A new edit fully replaces the pending render
// pass; rendering itself is synchronous and cheap relative to the
// debounce window, so there is no in-flight cancellation.
type Host struct {
	debouncer *schedule.Debouncer
	sink      func(*layout.Document)

	mu       sync.Mutex
	memoDoc  *types.CVDocument
	memoTpl  string
	memoOut  *layout.Document
	rendered *layout.Document
}

// NewHost creates a host that pushes each rendered box tree to sink.
// A nil sink is allowed; the result is still available from Current.
func NewHost(debounce time.Duration, sink func(*layout.Document)) *Host {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Host{
		debouncer: schedule.NewDebouncer(debounce),
		sink:      sink,
	}
}

// Update schedules a render pass for a new document snapshot,
// replacing any pending pass.
func (h *Host) Update(doc *types.CVDocument) {
	h.debouncer.Trigger(func() { h.render(doc) })
}

// Flush renders any pending snapshot immediately.
func (h *Host) Flush() {
	h.debouncer.Flush()
}

// Current returns the most recently rendered box tree, or nil before
// the first pass completes.
func (h *Host) Current() *layout.Document {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rendered
}

// Render renders a snapshot synchronously, bypassing the debounce
// window but sharing the memo. Used by request/response callers that
// need the tree now.
func (h *Host) Render(doc *types.CVDocument) *layout.Document {
	return h.render(doc)
}

// Close stops the host; pending passes are discarded.
func (h *Host) Close() {
	h.debouncer.Stop()
}

func (h *Host) render(doc *types.CVDocument) *layout.Document {
	tpl := templates.Active(doc)

	h.mu.Lock()
	// Snapshots are immutable, so pointer identity plus template id is
	// a sound memo key: the same snapshot under the same template
	// always yields the same tree.
	if h.memoDoc == doc && h.memoTpl == tpl.ID() && h.memoOut != nil {
		out := h.memoOut
		h.rendered = out
		h.mu.Unlock()
		return out
	}
	h.mu.Unlock()

	out := tpl.Render(doc)

	h.mu.Lock()
	h.memoDoc = doc
	h.memoTpl = tpl.ID()
	h.memoOut = out
	h.rendered = out
	h.mu.Unlock()

	if h.sink != nil {
		h.sink(out)
	}
	return out
}
