package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfigat/prompt/internal/fetch"
	"github.com/mfigat/prompt/internal/guide"
	"github.com/mfigat/prompt/internal/scroll"
	"github.com/mfigat/prompt/internal/script"
)

type scriptResultMsg struct {
	script script.Script
	guide  []guide.Step
	err    error
}

type exportResultMsg struct {
	path string
	err  error
}

type frameMsg time.Time

func frameTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func loadScriptJob(path string, speed float64) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		s, err := script.LoadFile(path)
		if err != nil {
			return scriptResultMsg{err: err}, err
		}
		return scriptResultMsg{script: s, guide: rehearsalSteps(s, speed)}, nil
	}
}

func fetchScriptJob(url string, speed float64) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, 90*time.Second)
		defer cancel()
		s, err := fetch.Script(ctx, nil, url)
		if err != nil {
			return scriptResultMsg{err: err}, err
		}
		return scriptResultMsg{script: s, guide: rehearsalSteps(s, speed)}, nil
	}
}

func exportScriptJob(dir string, s script.Script) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportResultMsg{err: err}, err
		}
		path := filepath.Join(dir, exportFilename(s.Title))
		if err := os.WriteFile(path, []byte(s.Body+"\n"), 0o644); err != nil {
			return exportResultMsg{err: err}, err
		}
		return exportResultMsg{path: path}, nil
	}
}

func rehearsalSteps(s script.Script, speed float64) []guide.Step {
	return guide.Build(guide.Metadata{
		Title:      s.Title,
		WordCount:  s.WordCount(),
		SlideCount: len(s.Slides()),
		Estimated:  scroll.EstimatedDuration(s.WordCount(), speed),
	})
}

func exportFilename(title string) string {
	title = strings.TrimSpace(strings.ToLower(title))
	if title == "" {
		title = "untitled"
	}
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "untitled"
	}
	return fmt.Sprintf("%s.txt", name)
}
