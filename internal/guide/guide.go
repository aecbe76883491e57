package guide

import (
	"fmt"
	"strings"
	"time"
)

// Step represents one actionable recommendation in the rehearsal workflow.
type Step struct {
	Title       string
	Description string
}

// Metadata carries just enough context for personalizing rehearsal steps.
type Metadata struct {
	Title      string
	WordCount  int
	SlideCount int
	Estimated  time.Duration
}

// Build returns a rehearsal checklist tailored to a single script.
func Build(meta Metadata) []Step {
	displayTitle := strings.TrimSpace(meta.Title)
	if displayTitle == "" {
		displayTitle = "the script"
	}
	pacing := "Pick a speed and note where you drift ahead of or behind the scroll."
	if meta.Estimated > 0 {
		pacing = fmt.Sprintf("At the current speed %s runs about %s for %d words. Note where you drift ahead of or behind the scroll and trim those passages.",
			displayTitle, meta.Estimated.Round(time.Second), meta.WordCount)
	}
	structure := "Read each slide aloud once, out of order, so transitions stop depending on momentum."
	if meta.SlideCount > 1 {
		structure = fmt.Sprintf("Read each of the %d slides aloud once, out of order, so transitions stop depending on momentum.", meta.SlideCount)
	}

	return []Step{
		{
			Title:       "Pass 1 – Cold read",
			Description: fmt.Sprintf("Read %s straight through without stopping. Mark every sentence you stumbled on; those are rewrite candidates, not delivery problems.", displayTitle),
		},
		{
			Title:       "Pass 2 – Timed run",
			Description: pacing,
		},
		{
			Title:       "Pass 3 – Slide transitions",
			Description: structure,
		},
		{
			Title:       "Delivery polish",
			Description: "Run once with the mirror and final styling enabled. Watch eye line against the lens, not the text, and let the scroll carry the pace.",
		},
	}
}
