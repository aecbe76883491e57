package prefs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mfigat/prompt/internal/storage"
)

func newTestSink(t *testing.T) (storage.Sink, string) {
	t.Helper()
	dir := t.TempDir()
	sink, err := storage.NewFileSink(dir)
	if err != nil {
		t.Fatalf("NewFileSink: %v", err)
	}
	return sink, dir
}

func TestLoadDevicePrefsDefaults(t *testing.T) {
	sink, _ := newTestSink(t)

	prefs := LoadDevicePrefs(sink)
	if prefs.Enabled {
		t.Error("preview should start disabled")
	}
	if prefs.GridConfig != "2x" {
		t.Errorf("GridConfig = %q, want 2x", prefs.GridConfig)
	}
	if !reflect.DeepEqual(prefs.DeviceOrder, DeviceRegistry) {
		t.Errorf("DeviceOrder = %v, want registry order", prefs.DeviceOrder)
	}
	if !reflect.DeepEqual(prefs.EnabledDeviceTypes, DeviceRegistry) {
		t.Errorf("EnabledDeviceTypes = %v, want all registry devices", prefs.EnabledDeviceTypes)
	}
}

func TestLoadDevicePrefsCorruptedFallsBackToDefaults(t *testing.T) {
	sink, dir := newTestSink(t)

	path := filepath.Join(dir, KeyDevices+".json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	prefs := LoadDevicePrefs(sink)
	if prefs.Enabled {
		t.Error("corrupted store should load with preview disabled")
	}
	if prefs.GridConfig != "2x" {
		t.Errorf("GridConfig = %q, want 2x", prefs.GridConfig)
	}
}

func TestLoadDevicePrefsMergesNewRegistryDevices(t *testing.T) {
	sink, _ := newTestSink(t)

	// Persisted order predates some registry device types.
	persist(sink, KeyDevices, DevicePrefs{
		Enabled:     true,
		GridConfig:  "3x",
		DeviceOrder: []string{"tablet", "phone"},
	})

	prefs := LoadDevicePrefs(sink)
	want := []string{"tablet", "phone", "laptop", "desktop", "tv"}
	if !reflect.DeepEqual(prefs.DeviceOrder, want) {
		t.Errorf("DeviceOrder = %v, want %v", prefs.DeviceOrder, want)
	}
	if !prefs.Enabled || prefs.GridConfig != "3x" {
		t.Errorf("persisted fields not preserved: %+v", prefs)
	}
}

func TestLoadDevicePrefsDropsDuplicatesAndEmpties(t *testing.T) {
	sink, _ := newTestSink(t)
	persist(sink, KeyDevices, DevicePrefs{
		GridConfig:  "2x",
		DeviceOrder: []string{"tv", "", "tv", "phone"},
	})

	prefs := LoadDevicePrefs(sink)
	want := []string{"tv", "phone", "tablet", "laptop", "desktop"}
	if !reflect.DeepEqual(prefs.DeviceOrder, want) {
		t.Errorf("DeviceOrder = %v, want %v", prefs.DeviceOrder, want)
	}
}

func TestSaveDevicePrefsStampsLastUpdated(t *testing.T) {
	sink, _ := newTestSink(t)

	prefs := DefaultDevicePrefs()
	prefs.Enabled = true
	SaveDevicePrefs(sink, prefs)

	loaded := LoadDevicePrefs(sink)
	if !loaded.Enabled {
		t.Error("Enabled not persisted")
	}
	if loaded.LastUpdated.IsZero() {
		t.Error("LastUpdated should be stamped on save")
	}
}
