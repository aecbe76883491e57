package storage

import (
	"os"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileSinkRoundTrip(t *testing.T) {
	t.Parallel()

	sink, err := NewFileSink(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	want := payload{Name: "intro", Count: 3}
	if err := sink.Set("content", want); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got payload
	ok, err := sink.Get("content", &got)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestFileSinkMissingKey(t *testing.T) {
	t.Parallel()

	sink, err := NewFileSink(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}

	var got payload
	ok, err := sink.Get("never-written", &got)
	if err != nil {
		t.Fatalf("missing key surfaced error: %v", err)
	}
	if ok {
		t.Fatal("missing key reported as present")
	}
}

func TestFileSinkCorruptedValue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var got payload
	ok, err := sink.Get("broken", &got)
	if err == nil {
		t.Fatal("corrupted value should surface a decode error")
	}
	if ok {
		t.Fatal("corrupted value reported as present")
	}
}

func TestFileSinkRemove(t *testing.T) {
	t.Parallel()

	sink, err := NewFileSink(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}
	if err := sink.Set("ui", payload{Name: "panel"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := sink.Remove("ui"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := sink.Remove("ui"); err != nil {
		t.Fatalf("second Remove should be a no-op, got %v", err)
	}

	var got payload
	if ok, _ := sink.Get("ui", &got); ok {
		t.Fatal("removed key still readable")
	}
}

func TestSanitizeKey(t *testing.T) {
	t.Parallel()

	if got := sanitizeKey("../devices:preview"); got != "--devices-preview" {
		t.Fatalf("sanitizeKey = %q", got)
	}
	if got := sanitizeKey("  "); got != "default" {
		t.Fatalf("empty key sanitized to %q", got)
	}
}
