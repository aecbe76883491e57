package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScriptDownloadsAndTitles(t *testing.T) {
	t.Setenv(cacheEnvVar, t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Opening line.\n---\nClosing line."))
	}))
	t.Cleanup(server.Close)

	s, err := Script(context.Background(), server.Client(), server.URL+"/talks/launch-day.txt")
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	if s.Title != "launch-day" {
		t.Errorf("Title = %q, want launch-day", s.Title)
	}
	if slides := s.Slides(); len(slides) != 2 {
		t.Errorf("Slides() = %d segments, want 2", len(slides))
	}
}

func TestScriptPropagatesDownloadError(t *testing.T) {
	t.Setenv(cacheEnvVar, t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	if _, err := Script(context.Background(), server.Client(), server.URL+"/missing.txt"); err == nil {
		t.Error("expected error for 404 source")
	}
}

func TestTitleFromURL(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"https://example.com/talks/launch.pdf": "launch",
		"https://example.com/":                 "",
		"://bad":                               "",
	}
	for input, want := range cases {
		if got := titleFromURL(input); got != want {
			t.Errorf("titleFromURL(%q) = %q, want %q", input, got, want)
		}
	}
}
