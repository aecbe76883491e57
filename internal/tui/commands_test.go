package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScriptJobReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opening night.txt")
	if err := os.WriteFile(path, []byte("Hello.\n---\nGoodbye."), 0o644); err != nil {
		t.Fatal(err)
	}

	msg, err := loadScriptJob(path, 1)(context.Background())
	if err != nil {
		t.Fatalf("job error: %v", err)
	}
	result, ok := msg.(scriptResultMsg)
	if !ok {
		t.Fatalf("payload type %T", msg)
	}
	if result.script.Title != "opening night" {
		t.Errorf("title = %q", result.script.Title)
	}
	if len(result.guide) == 0 {
		t.Error("rehearsal steps should accompany a loaded script")
	}
}

func TestLoadScriptJobSurfacesMissingFile(t *testing.T) {
	msg, err := loadScriptJob(filepath.Join(t.TempDir(), "absent.txt"), 1)(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	result, ok := msg.(scriptResultMsg)
	if !ok || result.err == nil {
		t.Fatalf("payload should carry the error, got %T", msg)
	}
}

func TestExportScriptJobWritesBody(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t)
	m.script.Title = "Launch Day!"
	m.script.SetBody("line one")

	msg, err := exportScriptJob(dir, m.script)(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	result := msg.(exportResultMsg)
	if filepath.Base(result.path) != "launch-day.txt" {
		t.Errorf("export path = %q", result.path)
	}
	data, err := os.ReadFile(result.path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "line one\n" {
		t.Errorf("exported body = %q", string(data))
	}
}

func TestExportFilename(t *testing.T) {
	cases := map[string]string{
		"Launch Day!":  "launch-day.txt",
		"  ":           "untitled.txt",
		"Q3 All-Hands": "q3-all-hands.txt",
	}
	for input, want := range cases {
		if got := exportFilename(input); got != want {
			t.Errorf("exportFilename(%q) = %q, want %q", input, got, want)
		}
	}
}
