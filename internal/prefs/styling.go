package prefs

import (
	"github.com/mfigat/prompt/internal/config"
	"github.com/mfigat/prompt/internal/storage"
)

// StylingState is what the configuration store persists: the current
// snapshot only. Persisting the undo/redo stacks is a per-deployment
// choice; this deployment keeps history in memory so a reload starts with a
// clean undo log.
type StylingState struct {
	Config config.Configuration `json:"config"`
}

// LoadStyling returns the persisted configuration, or defaults when none is
// stored or the stored JSON is unreadable.
func LoadStyling(sink storage.Sink) config.Configuration {
	var stored StylingState
	if ok, err := sinkGet(sink, KeyStyling, &stored); err == nil && ok {
		return stored.Config
	}
	return config.Default()
}

// StylingCommitHook persists each committed snapshot under KeyStyling.
func StylingCommitHook(sink storage.Sink) config.CommitHook {
	return func(c config.Configuration) error {
		if sink == nil {
			return nil
		}
		return sink.Set(KeyStyling, StylingState{Config: c})
	}
}
