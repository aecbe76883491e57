package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfigat/prompt/internal/config"
	"github.com/mfigat/prompt/internal/prefs"
	"github.com/mfigat/prompt/internal/settings"
	"github.com/mfigat/prompt/internal/storage"
	"github.com/mfigat/prompt/internal/tui"
)

func main() {
	settingsPath := flag.String("settings", settings.DefaultPath(), "path to the settings TOML file")
	dataDir := flag.String("data", "", "override the state directory")
	scriptPath := flag.String("script", "", "load a script file (.txt or .pdf) at startup")
	scriptURL := flag.String("url", "", "fetch a remote script at startup")
	speed := flag.Float64("speed", 0, "initial scroll speed (0.1-5, overrides settings)")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	cfg, err := settings.Load(*settingsPath)
	if err != nil {
		fmt.Println("settings unreadable, using defaults:", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *speed > 0 {
		cfg.DefaultSpeed = *speed
	}
	if *noAltScreen {
		cfg.AltScreen = false
	}

	sink, err := storage.NewFileSink(cfg.DataDir)
	if err != nil {
		fmt.Println("failed to open state directory:", err)
		os.Exit(1)
	}

	initial := prefs.LoadStyling(sink)
	styling := config.NewStore(config.StoreOptions{
		Initial:  &initial,
		OnCommit: prefs.StylingCommitHook(sink),
	})

	opts := []tea.ProgramOption{}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Settings:   cfg,
			Sink:       sink,
			Styling:    styling,
			Content:    prefs.NewContentStore(sink),
			UI:         prefs.NewUIStore(sink),
			Playback:   prefs.NewPlaybackStore(cfg.DefaultSpeed),
			ScriptPath: *scriptPath,
			ScriptURL:  *scriptURL,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}
