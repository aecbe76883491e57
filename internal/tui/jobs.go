package tui

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type jobKind string

type jobStatus string

const (
	jobKindLoad   jobKind = "load"
	jobKindFetch  jobKind = "fetch"
	jobKindExport jobKind = "export"
)

const (
	jobStatusRunning   jobStatus = "running"
	jobStatusSucceeded jobStatus = "succeeded"
	jobStatusFailed    jobStatus = "failed"
)

// jobHistoryLimit bounds the status badges shown in the session bar.
const jobHistoryLimit = 4

type jobSnapshot struct {
	ID          string
	Kind        jobKind
	Status      jobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Err         string
	Duration    time.Duration
}

type jobSignalMsg struct {
	Snapshot jobSnapshot
}

type jobResultEnvelope struct {
	Snapshot jobSnapshot
	Payload  tea.Msg
}

type jobRunner func(context.Context) (tea.Msg, error)

// jobBus starts background work as a two-step tea.Sequence: a start signal
// the model can render immediately, then the blocking run. It remembers the
// most recent snapshots for the status bar.
type jobBus struct {
	mu      sync.Mutex
	counter int64
	recent  []jobSnapshot
}

func newJobBus() *jobBus {
	return &jobBus{}
}

func (b *jobBus) nextID(kind jobKind) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.counter++
	return fmt.Sprintf("%s-%d", kind, b.counter)
}

func (b *jobBus) remember(snapshot jobSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.recent {
		if existing.ID == snapshot.ID {
			b.recent[i] = snapshot
			return
		}
	}
	b.recent = append(b.recent, snapshot)
	if len(b.recent) > jobHistoryLimit {
		b.recent = b.recent[len(b.recent)-jobHistoryLimit:]
	}
}

// Recent returns the remembered snapshots, newest last.
func (b *jobBus) Recent() []jobSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]jobSnapshot(nil), b.recent...)
}

func (b *jobBus) Start(kind jobKind, runner jobRunner) tea.Cmd {
	id := b.nextID(kind)
	started := time.Now()
	startSnapshot := jobSnapshot{ID: id, Kind: kind, Status: jobStatusRunning, StartedAt: started}
	b.remember(startSnapshot)
	startCmd := func() tea.Msg {
		return jobSignalMsg{Snapshot: startSnapshot}
	}

	runCmd := func() tea.Msg {
		ctx := context.Background()
		payload, err := runner(ctx)
		snapshot := jobSnapshot{
			ID:          id,
			Kind:        kind,
			StartedAt:   started,
			CompletedAt: time.Now(),
		}
		if err != nil {
			snapshot.Status = jobStatusFailed
			snapshot.Err = err.Error()
		} else {
			snapshot.Status = jobStatusSucceeded
		}
		snapshot.Duration = snapshot.CompletedAt.Sub(started)
		b.remember(snapshot)
		log.Printf("[jobs] %s %s (duration=%s, err=%v)", kind, snapshot.Status, snapshot.Duration, err)
		return jobResultEnvelope{Snapshot: snapshot, Payload: payload}
	}

	return tea.Sequence(startCmd, runCmd)
}
