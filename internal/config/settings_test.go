package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultStudioSettingsIsSane(t *testing.T) {
	s := DefaultStudioSettings()
	if s.WindowScale < 1 || s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		t.Fatalf("unreasonable defaults: %+v", s)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	want := DefaultStudioSettings()
	want.LastPresetPath = "/tmp/example.avs"
	want.RecentPresets = []string{"/tmp/a.avs", "/tmp/b.avs", "/tmp/a.avs"}
	want.WindowScale = 3

	if err := SaveStudioSettings(path, want); err != nil {
		t.Fatalf("SaveStudioSettings: %v", err)
	}

	got, err := LoadStudioSettings(path)
	if err != nil {
		t.Fatalf("LoadStudioSettings: %v", err)
	}
	if got.LastPresetPath != want.LastPresetPath {
		t.Fatalf("LastPresetPath = %q, want %q", got.LastPresetPath, want.LastPresetPath)
	}
	if got.WindowScale != want.WindowScale {
		t.Fatalf("WindowScale = %d, want %d", got.WindowScale, want.WindowScale)
	}
	if len(got.RecentPresets) != 2 {
		t.Fatalf("expected recent presets to be deduplicated, got %v", got.RecentPresets)
	}
}

func TestLoadStudioSettingsMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	got, err := LoadStudioSettings(filepath.Join(dir, "does-not-exist.json"))
	if err != nil {
		t.Fatalf("LoadStudioSettings: %v", err)
	}
	want := DefaultStudioSettings()
	if got.WindowScale != want.WindowScale {
		t.Fatalf("expected defaults for a missing file, got %+v", got)
	}
}

func TestLoadStudioSettingsEmptyPath(t *testing.T) {
	got, err := LoadStudioSettings("")
	if err != nil {
		t.Fatalf("LoadStudioSettings(\"\"): %v", err)
	}
	if got.FrameWidth != DefaultStudioSettings().FrameWidth {
		t.Fatalf("expected defaults for an empty path")
	}
}
