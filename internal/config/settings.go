// Package config persists the engine's host-tunable defaults: caret blink
// timing, key repeat thresholds, undo depth and widget colors. TOML is the
// primary format with JSON as a fallback for hosts that generate their
// settings programmatically.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	SettingsFormatTOML SettingsFormat = "toml"
	SettingsFormatJSON SettingsFormat = "json"
)

type SettingsFormat string

type SettingsHandle struct {
	Path   string
	Format SettingsFormat
}

type Settings struct {
	Timing TimingSettings `json:"timing" toml:"timing"`
	Editor EditorSettings `json:"editor" toml:"editor"`
}

type TimingSettings struct {
	// Blink phase lengths and key repeat thresholds, in host ticks.
	BlinkShow   int `json:"blink_show"   toml:"blink_show"`
	BlinkHide   int `json:"blink_hide"   toml:"blink_hide"`
	RepeatDelay int `json:"repeat_delay" toml:"repeat_delay"`
	RepeatSpan  int `json:"repeat_span"  toml:"repeat_span"`
}

type EditorSettings struct {
	UndoLevels int    `json:"undo_levels" toml:"undo_levels"`
	WholeWords bool   `json:"whole_words" toml:"whole_words"`
	Align      string `json:"align"       toml:"align"`
}

const (
	TimingBlinkShowDefault   = 18
	TimingBlinkHideDefault   = 12
	TimingRepeatDelayDefault = 15
	TimingRepeatSpanDefault  = 2
	EditorUndoLevelsDefault  = 20
)

func DefaultSettings() Settings {
	return Settings{
		Timing: TimingSettings{
			BlinkShow:   TimingBlinkShowDefault,
			BlinkHide:   TimingBlinkHideDefault,
			RepeatDelay: TimingRepeatDelayDefault,
			RepeatSpan:  TimingRepeatSpanDefault,
		},
		Editor: EditorSettings{
			UndoLevels: EditorUndoLevelsDefault,
			Align:      "left",
		},
	}
}

// NormaliseSettings replaces zero or out-of-range values with defaults so a
// sparse settings file still yields a usable configuration.
func NormaliseSettings(in Settings) Settings {
	out := DefaultSettings()
	out.Timing.BlinkShow = clampInt(in.Timing.BlinkShow, 1, 600, TimingBlinkShowDefault)
	out.Timing.BlinkHide = clampInt(in.Timing.BlinkHide, 1, 600, TimingBlinkHideDefault)
	out.Timing.RepeatDelay = clampInt(in.Timing.RepeatDelay, 1, 600, TimingRepeatDelayDefault)
	out.Timing.RepeatSpan = clampInt(in.Timing.RepeatSpan, 1, 600, TimingRepeatSpanDefault)
	out.Editor.UndoLevels = clampInt(in.Editor.UndoLevels, 0, 10000, EditorUndoLevelsDefault)
	out.Editor.WholeWords = in.Editor.WholeWords
	out.Editor.Align = normaliseAlign(in.Editor.Align)
	return out
}

// Dir is the settings directory, overridable with TYPESET_CONFIG_DIR.
func Dir() string {
	if dir := os.Getenv("TYPESET_CONFIG_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "typeset")
}

// LoadSettings tries TOML first, then JSON, then returns defaults when
// neither exists. Parse errors fail immediately but missing files just skip
// to the next format.
func LoadSettings() (Settings, SettingsHandle, error) {
	dir := Dir()
	candidates := []SettingsHandle{
		{Path: filepath.Join(dir, "settings.toml"), Format: SettingsFormatTOML},
		{Path: filepath.Join(dir, "settings.json"), Format: SettingsFormatJSON},
	}

	var accumulated error
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			accumulated = errors.Join(
				accumulated,
				fmt.Errorf("read settings %q: %w", candidate.Path, err),
			)
			continue
		}

		settings, err := decodeSettings(data, candidate.Format)
		if err != nil {
			return Settings{}, SettingsHandle{}, fmt.Errorf(
				"parse settings %q: %w",
				candidate.Path,
				err,
			)
		}
		return NormaliseSettings(settings), candidate, nil
	}

	if accumulated != nil {
		return Settings{}, SettingsHandle{}, accumulated
	}

	return DefaultSettings(), SettingsHandle{
		Path:   candidates[0].Path,
		Format: SettingsFormatTOML,
	}, nil
}

func decodeSettings(data []byte, format SettingsFormat) (Settings, error) {
	var settings Settings
	switch format {
	case SettingsFormatTOML:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, err
		}
	case SettingsFormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&settings); err != nil {
			return Settings{}, err
		}
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", format)
	}
	return settings, nil
}

func SaveSettings(settings Settings, handle SettingsHandle) error {
	settings = NormaliseSettings(settings)
	path := handle.Path
	format := handle.Format
	if path == "" {
		path = filepath.Join(Dir(), "settings.toml")
	}
	if format == "" {
		format = SettingsFormatTOML
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure settings directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case SettingsFormatTOML:
		data, err = toml.Marshal(settings)
	case SettingsFormatJSON:
		buffer := &bytes.Buffer{}
		encoder := json.NewEncoder(buffer)
		encoder.SetIndent("", "  ")
		if err = encoder.Encode(settings); err == nil {
			data = buffer.Bytes()
		}
	default:
		return fmt.Errorf("unsupported settings format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %q: %w", path, err)
	}
	return nil
}

// write to temp file then rename so readers never see partial/corrupt data.
// rename is atomic on most filesystems so the settings file is always valid.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".typeset-settings-*.tmp")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		closeErr := tmp.Close()
		if closeErr != nil {
			return errors.Join(err, closeErr)
		}
		return err
	}

	if err := tmp.Chmod(perm); err != nil {
		closeErr := tmp.Close()
		if closeErr != nil {
			return errors.Join(err, closeErr)
		}
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

func normaliseAlign(v string) string {
	switch v {
	case "left", "center", "right", "justify":
		return v
	}
	return "left"
}

func clampInt(value, min, max, fallback int) int {
	if value == 0 {
		return fallback
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
