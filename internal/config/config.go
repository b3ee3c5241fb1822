package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keyforge/internal/input/command"
)

// Environment variables read by ApplyEnv.
const (
	EnvPlatform  = "KEYFORGE_PLATFORM"
	EnvOutputDir = "KEYFORGE_OUTPUT_DIR"
	EnvLogLevel  = "KEYFORGE_LOG_LEVEL"
)

// DefaultLayoutName is the file name layouts are written under. The keyboard
// reads qwerty.txt from its active directory.
const DefaultLayoutName = "qwerty.txt"

// Settings holds everything keyforge reads before running a script.
type Settings struct {
	// Platform is the host commands resolve against: "pc" or "mac".
	Platform string `toml:"platform"`

	// OutputDir is where built layouts are written.
	OutputDir string `toml:"output_dir"`

	// LayoutName is the file name of the built layout.
	LayoutName string `toml:"layout_name"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Presets are keymap names merged before the script runs, in order.
	Presets []string `toml:"presets"`

	// RemapFiles are keymap files merged after the presets, in order.
	RemapFiles []string `toml:"remap_files"`

	// KeymapDirs are searched for keymap files that scripts and Presets can
	// reference by name.
	KeymapDirs []string `toml:"keymap_dirs"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Platform:   command.PC.String(),
		OutputDir:  ".",
		LayoutName: DefaultLayoutName,
		LogLevel:   "info",
	}
}

// DefaultPath returns the per-user settings file location, or "" if the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keyforge", "config.toml")
}

// Load returns the defaults overlaid with the settings file at path and then
// the environment. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path != "" {
		if err := s.mergeFile(path); err != nil {
			return Settings{}, err
		}
	}
	s.ApplyEnv(os.LookupEnv)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// mergeFile overlays the fields set in a TOML file.
func (s *Settings) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading settings file %s: %w", path, err)
	}

	// Only paths written in the file are relative to it; defaults stay put.
	var file Settings
	if err := file.Merge(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	file.resolvePaths(filepath.Dir(path))
	s.overlay(file)
	return nil
}

// overlay copies the fields set in o onto s.
func (s *Settings) overlay(o Settings) {
	if o.Platform != "" {
		s.Platform = o.Platform
	}
	if o.OutputDir != "" {
		s.OutputDir = o.OutputDir
	}
	if o.LayoutName != "" {
		s.LayoutName = o.LayoutName
	}
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
	if o.Presets != nil {
		s.Presets = o.Presets
	}
	if o.RemapFiles != nil {
		s.RemapFiles = o.RemapFiles
	}
	if o.KeymapDirs != nil {
		s.KeymapDirs = o.KeymapDirs
	}
}

// Merge overlays the fields set in a TOML document. Unknown keys are
// rejected so typos do not go unnoticed.
func (s *Settings) Merge(data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrInvalidSetting, strict.String())
		}
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}

// resolvePaths makes file paths relative to base and expands a leading ~.
func (s *Settings) resolvePaths(base string) {
	s.OutputDir = resolvePath(base, s.OutputDir)
	for i, p := range s.RemapFiles {
		s.RemapFiles[i] = resolvePath(base, p)
	}
	for i, p := range s.KeymapDirs {
		s.KeymapDirs[i] = resolvePath(base, p)
	}
}

func resolvePath(base, p string) string {
	p = expandHome(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// ApplyEnv overlays the KEYFORGE_* variables reported by lookup. Empty
// values are treated as unset.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvPlatform); ok && v != "" {
		s.Platform = v
	}
	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		s.OutputDir = expandHome(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		s.LogLevel = v
	}
}

// Overrides carries command-line values. Empty fields leave the setting alone.
type Overrides struct {
	Platform   string
	OutputDir  string
	LayoutName string
	LogLevel   string
}

// Override applies command-line values on top of everything else.
func (s *Settings) Override(o Overrides) error {
	if o.Platform != "" {
		s.Platform = o.Platform
	}
	if o.OutputDir != "" {
		s.OutputDir = o.OutputDir
	}
	if o.LayoutName != "" {
		s.LayoutName = o.LayoutName
	}
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
	return s.Validate()
}

// Validate checks the settings that have a fixed set of values.
func (s Settings) Validate() error {
	if _, err := s.PlatformValue(); err != nil {
		return err
	}
	switch strings.ToLower(s.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidSetting, s.LogLevel)
	}
	if s.LayoutName == "" || s.LayoutName != filepath.Base(s.LayoutName) {
		return fmt.Errorf("%w: layout_name %q must be a plain file name", ErrInvalidSetting, s.LayoutName)
	}
	return nil
}

// PlatformValue parses Platform.
func (s Settings) PlatformValue() (command.Platform, error) {
	p, err := command.ParsePlatform(s.Platform)
	if err != nil {
		return command.PC, fmt.Errorf("%w: platform: %w", ErrInvalidSetting, err)
	}
	return p, nil
}

// OutputPath returns the full path of the built layout file.
func (s Settings) OutputPath() string {
	return filepath.Join(s.OutputDir, s.LayoutName)
}
