package script

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestSlidesSplitOnSeparatorLines(t *testing.T) {
	s := New("demo", "Welcome everyone.\n---\nSecond slide\nstill second.\n---\nFinale.")
	want := []string{"Welcome everyone.", "Second slide\nstill second.", "Finale."}
	if got := s.Slides(); !reflect.DeepEqual(got, want) {
		t.Errorf("Slides() = %#v, want %#v", got, want)
	}
}

func TestSlidesDropEmptySegments(t *testing.T) {
	s := New("demo", "---\n\n---\nOnly slide.\n---")
	want := []string{"Only slide."}
	if got := s.Slides(); !reflect.DeepEqual(got, want) {
		t.Errorf("Slides() = %#v, want %#v", got, want)
	}
}

func TestSlidesIgnoreInlineDashes(t *testing.T) {
	s := New("demo", "A dashed --- aside stays put.")
	if got := s.Slides(); len(got) != 1 {
		t.Errorf("inline dashes split the body: %#v", got)
	}
}

func TestWordCount(t *testing.T) {
	s := New("demo", "  one two\n three\tfour  ")
	if got := s.WordCount(); got != 4 {
		t.Errorf("WordCount() = %d, want 4", got)
	}
}

func TestSetBodyBumpsUpdatedAt(t *testing.T) {
	s := New("demo", "before")
	created := s.UpdatedAt
	s.SetBody("before")
	if !s.UpdatedAt.Equal(created) {
		t.Error("no-op SetBody should not touch UpdatedAt")
	}
	s.SetBody("after")
	if s.UpdatedAt.Before(created) {
		t.Error("SetBody should bump UpdatedAt")
	}
	if s.Body != "after" {
		t.Errorf("Body = %q", s.Body)
	}
}

func TestLoadFileText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keynote.txt")
	if err := os.WriteFile(path, []byte("Hello\r\nworld.   Wide   gaps.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if s.Title != "keynote" {
		t.Errorf("Title = %q, want keynote", s.Title)
	}
	if s.Body != "Hello\nworld. Wide gaps." {
		t.Errorf("Body = %q", s.Body)
	}
	if s.ID == uuid.Nil {
		t.Error("ID should be assigned")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
