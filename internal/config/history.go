package config

// DefaultMaxHistory bounds how many undo steps are retained before the
// oldest snapshot is evicted.
const DefaultMaxHistory = 50

// History is a bounded undo/redo log of configuration snapshots. The "now"
// snapshot lives outside the stack (owned by Store); past holds snapshots
// most-recent-last, future holds redo targets next-first.
type History struct {
	past    []Configuration
	future  []Configuration
	maxSize int
}

// NewHistory returns an empty history. A non-positive maxSize falls back to
// DefaultMaxHistory.
func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultMaxHistory
	}
	return &History{maxSize: maxSize}
}

// Record pushes the snapshot that was current before a new edit. Any pending
// redo branch is discarded; when past is full the oldest snapshot is dropped.
func (h *History) Record(prev Configuration) {
	if len(h.past) == h.maxSize {
		copy(h.past, h.past[1:])
		h.past = h.past[:h.maxSize-1]
	}
	h.past = append(h.past, prev.Clone())
	h.future = nil
}

// Undo exchanges the current snapshot for the most recent past entry. The
// second return value is false (and current is returned unchanged) when
// there is nothing to undo.
func (h *History) Undo(current Configuration) (Configuration, bool) {
	if len(h.past) == 0 {
		return current, false
	}
	last := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]Configuration{current.Clone()}, h.future...)
	return last, true
}

// Redo is the mirror of Undo, consuming the front of the redo branch.
func (h *History) Redo(current Configuration) (Configuration, bool) {
	if len(h.future) == 0 {
		return current, false
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, current.Clone())
	return next, true
}

func (h *History) CanUndo() bool { return len(h.past) > 0 }

func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Clear drops both stacks. The caller's current snapshot is untouched.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}

// Position reports the "N/M changes" indicator: how many applied changes
// precede the current snapshot, and how many entries the log holds in total.
func (h *History) Position() (current, total int) {
	return len(h.past), len(h.past) + len(h.future)
}
