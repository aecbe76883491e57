package prefs

// PlaybackState is per-session only. It intentionally has no sink: scroll
// speed and the playing flag always reset on the next launch.
type PlaybackState struct {
	Speed   float64
	Playing bool
}

// PlaybackStore holds the transient playback state.
type PlaybackStore struct {
	state PlaybackState
}

// NewPlaybackStore starts every session at the given speed, stopped.
func NewPlaybackStore(defaultSpeed float64) *PlaybackStore {
	return &PlaybackStore{state: PlaybackState{Speed: defaultSpeed}}
}

func (s *PlaybackStore) State() PlaybackState { return s.state }

func (s *PlaybackStore) SetSpeed(v float64) { s.state.Speed = v }

func (s *PlaybackStore) SetPlaying(playing bool) { s.state.Playing = playing }
