package prefs

import "github.com/mfigat/prompt/internal/storage"

// UIState captures the persisted shell chrome: which panel is open, the
// active editing mode, and whether prompter text renders mirrored for a
// beam-splitter rig.
type UIState struct {
	PanelVisible bool   `json:"panelVisible"`
	Mode         string `json:"mode"`
	Mirrored     bool   `json:"mirrored"`
}

func defaultUIState() UIState {
	return UIState{PanelVisible: true, Mode: "edit"}
}

// UIStore persists UIState under KeyUI.
type UIStore struct {
	sink  storage.Sink
	state UIState
}

func NewUIStore(sink storage.Sink) *UIStore {
	s := &UIStore{sink: sink, state: defaultUIState()}
	var stored UIState
	if ok, err := sinkGet(sink, KeyUI, &stored); err == nil && ok {
		s.state = stored
	}
	return s
}

func (s *UIStore) State() UIState { return s.state }

func (s *UIStore) SetPanelVisible(visible bool) {
	if s.state.PanelVisible == visible {
		return
	}
	s.state.PanelVisible = visible
	persist(s.sink, KeyUI, s.state)
}

func (s *UIStore) SetMode(mode string) {
	if s.state.Mode == mode {
		return
	}
	s.state.Mode = mode
	persist(s.sink, KeyUI, s.state)
}

func (s *UIStore) SetMirrored(mirrored bool) {
	if s.state.Mirrored == mirrored {
		return
	}
	s.state.Mirrored = mirrored
	persist(s.sink, KeyUI, s.state)
}
