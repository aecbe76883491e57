// Package prefs holds the small persisted view-state stores: script
// content, UI state, device-preview preferences, and the deliberately
// transient playback state. Each store loads defaults when its stored JSON
// is missing or unreadable and persists on every mutation, logging (never
// surfacing) write failures.
package prefs

import (
	"log"

	"github.com/mfigat/prompt/internal/storage"
)

// Storage keys. One file per store so a corrupted entry only costs its own
// state.
const (
	KeyContent = "content"
	KeyUI      = "ui"
	KeyStyling = "styling"
	KeyDevices = "device-preview"
)

func persist(sink storage.Sink, key string, value any) {
	if sink == nil {
		return
	}
	if err := sink.Set(key, value); err != nil {
		log.Printf("[prefs] persist %s failed: %v", key, err)
	}
}
