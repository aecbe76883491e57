package config

import "log"

// CommitHook is invoked after every committed mutation with the new
// snapshot. A failing hook is logged and swallowed; the in-memory state is
// already committed and must not be rolled back.
type CommitHook func(Configuration) error

// Listener observes committed snapshots. Listeners run synchronously after
// the commit hook, in registration order.
type Listener func(Configuration)

// StoreOptions configures a Store. The zero value is usable.
type StoreOptions struct {
	Initial    *Configuration
	MaxHistory int
	OnCommit   CommitHook
}

// Store owns the live configuration and its undo/redo history. It is built
// for the single-threaded UI event loop: one store per session (or per
// test), mutations only through its methods, no ambient globals.
type Store struct {
	current   Configuration
	history   *History
	hook      CommitHook
	listeners []Listener
}

func NewStore(opts StoreOptions) *Store {
	initial := Default()
	if opts.Initial != nil {
		initial = opts.Initial.Clone()
	}
	return &Store{
		current: initial,
		history: NewHistory(opts.MaxHistory),
		hook:    opts.OnCommit,
	}
}

// Current returns the live snapshot. Callers must treat it as immutable.
func (s *Store) Current() Configuration { return s.current }

// Subscribe registers a listener for committed snapshots.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) SetTypography(p TypographyPatch) {
	s.commit(func(c *Configuration) { c.Typography = p.apply(c.Typography) })
}

func (s *Store) SetColors(p ColorsPatch) {
	s.commit(func(c *Configuration) { c.Colors = p.apply(c.Colors) })
}

func (s *Store) SetEffects(p EffectsPatch) {
	s.commit(func(c *Configuration) { c.Effects = p.apply(c.Effects) })
}

func (s *Store) SetLayout(p LayoutPatch) {
	s.commit(func(c *Configuration) { c.Layout = p.apply(c.Layout) })
}

func (s *Store) SetAnimations(p AnimationsPatch) {
	s.commit(func(c *Configuration) { c.Animations = p.apply(c.Animations) })
}

// Reset replaces the whole configuration, recording a single history entry.
func (s *Store) Reset(next Configuration) {
	s.commit(func(c *Configuration) { *c = next.Clone() })
}

func (s *Store) commit(mutate func(*Configuration)) {
	next := s.current.Clone()
	mutate(&next)
	if next.Equal(s.current) {
		// Redundant write; recording it would pollute the undo log.
		return
	}
	s.history.Record(s.current)
	s.current = next
	s.afterCommit()
}

// Undo steps back one change. Calling with an empty past is a no-op.
func (s *Store) Undo() {
	prev, ok := s.history.Undo(s.current)
	if !ok {
		return
	}
	s.current = prev
	s.afterCommit()
}

// Redo steps forward one change. Calling with an empty future is a no-op.
func (s *Store) Redo() {
	next, ok := s.history.Redo(s.current)
	if !ok {
		return
	}
	s.current = next
	s.afterCommit()
}

func (s *Store) CanUndo() bool { return s.history.CanUndo() }

func (s *Store) CanRedo() bool { return s.history.CanRedo() }

// ClearHistory empties the undo log, keeping the current snapshot. The UI is
// responsible for confirming with the user first.
func (s *Store) ClearHistory() {
	s.history.Clear()
}

// HistoryPosition reports the "N/M changes" indicator.
func (s *Store) HistoryPosition() (current, total int) {
	return s.history.Position()
}

func (s *Store) afterCommit() {
	if s.hook != nil {
		if err := s.hook(s.current); err != nil {
			log.Printf("[config] persist failed: %v", err)
		}
	}
	for _, fn := range s.listeners {
		fn(s.current)
	}
}
