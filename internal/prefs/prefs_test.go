package prefs

import (
	"testing"

	"github.com/mfigat/prompt/internal/config"
)

func TestContentStoreRoundTrip(t *testing.T) {
	sink, _ := newTestSink(t)

	store := NewContentStore(sink)
	store.SetText("Act one.\n---\nAct two.")
	store.SetBackgroundURL("https://example.com/bg.jpg")
	store.SetMusicURL("https://example.com/theme.mp3")

	reloaded := NewContentStore(sink)
	got := reloaded.State()
	if got.Text != "Act one.\n---\nAct two." {
		t.Errorf("Text = %q", got.Text)
	}
	if got.BackgroundURL != "https://example.com/bg.jpg" {
		t.Errorf("BackgroundURL = %q", got.BackgroundURL)
	}
	if got.MusicURL != "https://example.com/theme.mp3" {
		t.Errorf("MusicURL = %q", got.MusicURL)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be stamped on write")
	}
}

func TestContentStoreSkipsRedundantWrites(t *testing.T) {
	sink, _ := newTestSink(t)

	store := NewContentStore(sink)
	store.SetText("same")
	first := store.State().UpdatedAt

	store.SetText("same")
	if got := store.State().UpdatedAt; !got.Equal(first) {
		t.Errorf("redundant write should not touch UpdatedAt: %v != %v", got, first)
	}
}

func TestUIStoreRoundTrip(t *testing.T) {
	sink, _ := newTestSink(t)

	store := NewUIStore(sink)
	if got := store.State(); !got.PanelVisible || got.Mode != "edit" || got.Mirrored {
		t.Errorf("unexpected defaults: %+v", got)
	}

	store.SetPanelVisible(false)
	store.SetMode("present")
	store.SetMirrored(true)

	reloaded := NewUIStore(sink)
	got := reloaded.State()
	if got.PanelVisible || got.Mode != "present" || !got.Mirrored {
		t.Errorf("persisted state = %+v", got)
	}
}

func TestPlaybackStateNeverPersists(t *testing.T) {
	store := NewPlaybackStore(1)
	store.SetSpeed(3.5)
	store.SetPlaying(true)

	// A new session starts back at the default: playback has no sink.
	fresh := NewPlaybackStore(1)
	got := fresh.State()
	if got.Speed != 1 || got.Playing {
		t.Errorf("fresh session state = %+v, want speed 1, stopped", got)
	}
}

func TestStylingRoundTripAndFallback(t *testing.T) {
	sink, _ := newTestSink(t)

	if got := LoadStyling(sink); !got.Equal(config.Default()) {
		t.Error("empty sink should load defaults")
	}

	cfg := config.Default()
	cfg.Typography.FontSize = 64
	hook := StylingCommitHook(sink)
	if err := hook(cfg); err != nil {
		t.Fatalf("commit hook: %v", err)
	}

	if got := LoadStyling(sink); got.Typography.FontSize != 64 {
		t.Errorf("FontSize = %d, want 64", got.Typography.FontSize)
	}
}
