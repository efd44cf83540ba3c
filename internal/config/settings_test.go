package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsReturnsDefaultHandleWhenMissing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TYPESET_CONFIG_DIR", dir)

	settings, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	expectedPath := filepath.Join(dir, "settings.toml")
	if handle.Path != expectedPath {
		t.Fatalf("expected handle path %q, got %q", expectedPath, handle.Path)
	}
	if handle.Format != SettingsFormatTOML {
		t.Fatalf("expected format %q, got %q", SettingsFormatTOML, handle.Format)
	}
	if settings.Timing.BlinkShow != TimingBlinkShowDefault {
		t.Fatalf("expected default blink show %d, got %d", TimingBlinkShowDefault, settings.Timing.BlinkShow)
	}
	if settings.Editor.UndoLevels != EditorUndoLevelsDefault {
		t.Fatalf("expected default undo levels %d, got %d", EditorUndoLevelsDefault, settings.Editor.UndoLevels)
	}
}

func TestSaveAndLoadSettingsTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TYPESET_CONFIG_DIR", dir)

	want := DefaultSettings()
	want.Timing.RepeatDelay = 30
	want.Editor.Align = "justify"
	if err := SaveSettings(want, SettingsHandle{}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got.Timing.RepeatDelay != 30 {
		t.Fatalf("expected repeat delay 30, got %d", got.Timing.RepeatDelay)
	}
	if got.Editor.Align != "justify" {
		t.Fatalf("expected align %q, got %q", "justify", got.Editor.Align)
	}
	if handle.Format != SettingsFormatTOML {
		t.Fatalf("expected format %q after save, got %q", SettingsFormatTOML, handle.Format)
	}
}

func TestLoadSettingsJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TYPESET_CONFIG_DIR", dir)

	payload := DefaultSettings()
	payload.Timing.BlinkShow = 7
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write json settings: %v", err)
	}

	got, handle, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got.Timing.BlinkShow != 7 {
		t.Fatalf("expected blink show 7, got %d", got.Timing.BlinkShow)
	}
	if handle.Format != SettingsFormatJSON {
		t.Fatalf("expected json handle, got %q", handle.Format)
	}
}

func TestNormaliseSettingsFillsZeroes(t *testing.T) {
	got := NormaliseSettings(Settings{})
	if got.Timing.RepeatSpan != TimingRepeatSpanDefault {
		t.Fatalf("expected default repeat span, got %d", got.Timing.RepeatSpan)
	}
	if got.Editor.Align != "left" {
		t.Fatalf("expected default align, got %q", got.Editor.Align)
	}

	got = NormaliseSettings(Settings{Editor: EditorSettings{Align: "sideways"}})
	if got.Editor.Align != "left" {
		t.Fatalf("unknown align must normalise to left, got %q", got.Editor.Align)
	}
}
