package config

import "testing"

func snapshotWithFontSize(size int) Configuration {
	c := Default()
	c.Typography.FontSize = size
	return c
}

func TestHistoryBoundedEviction(t *testing.T) {
	t.Parallel()

	h := NewHistory(5)
	for size := 10; size < 30; size++ {
		h.Record(snapshotWithFontSize(size))
	}

	if got, _ := h.Position(); got != 5 {
		t.Fatalf("past length = %d, want maxSize 5", got)
	}

	// The retained entries must be the five most recent pushes (25..29),
	// surfaced newest-first by successive undos.
	current := snapshotWithFontSize(99)
	for want := 29; want >= 25; want-- {
		next, ok := h.Undo(current)
		if !ok {
			t.Fatalf("undo exhausted early at fontSize %d", want)
		}
		if next.Typography.FontSize != want {
			t.Fatalf("undo surfaced fontSize %d, want %d", next.Typography.FontSize, want)
		}
		current = next
	}
	if h.CanUndo() {
		t.Fatal("evicted entries should not be undoable")
	}
}

func TestHistoryBranchDiscard(t *testing.T) {
	t.Parallel()

	h := NewHistory(0)
	h.Record(snapshotWithFontSize(10))
	h.Record(snapshotWithFontSize(20))

	current, ok := h.Undo(snapshotWithFontSize(30))
	if !ok || !h.CanRedo() {
		t.Fatalf("undo should populate the redo branch (ok=%v canRedo=%v)", ok, h.CanRedo())
	}

	h.Record(current)
	if h.CanRedo() {
		t.Fatal("recording a new change must discard the redo branch")
	}
	if _, total := h.Position(); total != 2 {
		t.Fatalf("total entries = %d, want 2 after branch discard", total)
	}
}

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	t.Parallel()

	h := NewHistory(0)
	base := snapshotWithFontSize(10)
	current := base
	for _, size := range []int{20, 30, 40} {
		h.Record(current)
		current = snapshotWithFontSize(size)
	}

	for i := 0; i < 3; i++ {
		next, ok := h.Undo(current)
		if !ok {
			t.Fatalf("undo %d failed", i+1)
		}
		current = next
	}
	if !current.Equal(base) {
		t.Fatalf("after full undo fontSize = %d, want %d", current.Typography.FontSize, base.Typography.FontSize)
	}

	for i := 0; i < 3; i++ {
		next, ok := h.Redo(current)
		if !ok {
			t.Fatalf("redo %d failed", i+1)
		}
		current = next
	}
	if current.Typography.FontSize != 40 {
		t.Fatalf("after full redo fontSize = %d, want 40", current.Typography.FontSize)
	}
}

func TestHistoryNoOpWhenEmpty(t *testing.T) {
	t.Parallel()

	h := NewHistory(0)
	current := snapshotWithFontSize(10)

	if got, ok := h.Undo(current); ok || !got.Equal(current) {
		t.Fatalf("undo on empty history mutated state (ok=%v)", ok)
	}
	if got, ok := h.Redo(current); ok || !got.Equal(current) {
		t.Fatalf("redo on empty history mutated state (ok=%v)", ok)
	}
	if cur, total := h.Position(); cur != 0 || total != 0 {
		t.Fatalf("position = %d/%d, want 0/0", cur, total)
	}
}

func TestHistoryClearKeepsNothing(t *testing.T) {
	t.Parallel()

	h := NewHistory(0)
	h.Record(snapshotWithFontSize(10))
	if _, ok := h.Undo(snapshotWithFontSize(20)); !ok {
		t.Fatal("setup undo failed")
	}

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("clear must empty both stacks")
	}
	if cur, total := h.Position(); cur != 0 || total != 0 {
		t.Fatalf("position after clear = %d/%d, want 0/0", cur, total)
	}
}

func TestHistoryEntriesAreSnapshots(t *testing.T) {
	t.Parallel()

	h := NewHistory(0)
	live := Default()
	h.Record(live)

	// Mutating the recorded value afterwards must not reach the stored entry.
	live.Colors.GradientStops[0] = "#000000"

	got, ok := h.Undo(Default())
	if !ok {
		t.Fatal("undo failed")
	}
	if got.Colors.GradientStops[0] != Default().Colors.GradientStops[0] {
		t.Fatalf("history entry aliased the live slice: %q", got.Colors.GradientStops[0])
	}
}
