package prefs

import (
	"time"

	"github.com/mfigat/prompt/internal/storage"
)

// ContentState is the persisted authoring payload: the script text plus the
// media attachments referenced by the story view.
type ContentState struct {
	Text          string    `json:"text"`
	BackgroundURL string    `json:"backgroundUrl"`
	MusicURL      string    `json:"musicUrl"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ContentStore persists ContentState under KeyContent.
type ContentStore struct {
	sink  storage.Sink
	state ContentState
}

// NewContentStore loads the persisted content, or starts empty.
func NewContentStore(sink storage.Sink) *ContentStore {
	s := &ContentStore{sink: sink}
	var stored ContentState
	if ok, err := sinkGet(sink, KeyContent, &stored); err == nil && ok {
		s.state = stored
	}
	return s
}

func (s *ContentStore) State() ContentState { return s.state }

func (s *ContentStore) SetText(text string) {
	if s.state.Text == text {
		return
	}
	s.state.Text = text
	s.touch()
}

func (s *ContentStore) SetBackgroundURL(url string) {
	if s.state.BackgroundURL == url {
		return
	}
	s.state.BackgroundURL = url
	s.touch()
}

func (s *ContentStore) SetMusicURL(url string) {
	if s.state.MusicURL == url {
		return
	}
	s.state.MusicURL = url
	s.touch()
}

func (s *ContentStore) touch() {
	s.state.UpdatedAt = time.Now()
	persist(s.sink, KeyContent, s.state)
}

func sinkGet(sink storage.Sink, key string, out any) (bool, error) {
	if sink == nil {
		return false, nil
	}
	return sink.Get(key, out)
}
