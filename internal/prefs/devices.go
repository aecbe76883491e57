package prefs

import (
	"time"

	"github.com/mfigat/prompt/internal/storage"
)

// DeviceRegistry is the canonical set of preview device types, in default
// order. New types appended here must survive loads of older persisted
// state.
var DeviceRegistry = []string{"phone", "tablet", "laptop", "desktop", "tv"}

// DevicePrefs drives the multi-device preview grid.
type DevicePrefs struct {
	Enabled            bool      `json:"enabled"`
	GridConfig         string    `json:"gridConfig"`
	EnabledDeviceTypes []string  `json:"enabledDeviceTypes"`
	DeviceOrder        []string  `json:"deviceOrder"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

// DefaultDevicePrefs returns the documented defaults: preview off, 2x grid,
// every registry device enabled in registry order.
func DefaultDevicePrefs() DevicePrefs {
	return DevicePrefs{
		Enabled:            false,
		GridConfig:         "2x",
		EnabledDeviceTypes: append([]string(nil), DeviceRegistry...),
		DeviceOrder:        append([]string(nil), DeviceRegistry...),
	}
}

// LoadDevicePrefs reads the persisted preferences, falling back to defaults
// when the stored JSON is missing or unparseable. Registry device types
// absent from an older persisted order are appended so they are not lost.
func LoadDevicePrefs(sink storage.Sink) DevicePrefs {
	prefs := DefaultDevicePrefs()
	var stored DevicePrefs
	ok, err := sinkGet(sink, KeyDevices, &stored)
	if err != nil || !ok {
		return prefs
	}
	if stored.GridConfig == "" {
		stored.GridConfig = prefs.GridConfig
	}
	stored.DeviceOrder = mergeDeviceOrder(stored.DeviceOrder)
	return stored
}

// SaveDevicePrefs persists the preferences, stamping LastUpdated.
func SaveDevicePrefs(sink storage.Sink, prefs DevicePrefs) {
	prefs.LastUpdated = time.Now()
	persist(sink, KeyDevices, prefs)
}

func mergeDeviceOrder(order []string) []string {
	seen := make(map[string]bool, len(order))
	merged := make([]string, 0, len(DeviceRegistry))
	for _, device := range order {
		if device == "" || seen[device] {
			continue
		}
		seen[device] = true
		merged = append(merged, device)
	}
	for _, device := range DeviceRegistry {
		if !seen[device] {
			merged = append(merged, device)
		}
	}
	return merged
}
