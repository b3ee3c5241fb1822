package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/keyforge/internal/input/command"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	s := Defaults()
	if s.Platform != "pc" {
		t.Errorf("Platform = %q, want %q", s.Platform, "pc")
	}
	if s.LayoutName != "qwerty.txt" {
		t.Errorf("LayoutName = %q, want %q", s.LayoutName, "qwerty.txt")
	}
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, "info")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestMerge(t *testing.T) {
	s := Defaults()
	err := s.Merge([]byte(`
platform = "mac"
log_level = "debug"
presets = ["colemak", "dvorak"]
remap_files = ["a.json"]
`))
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	if s.Platform != "mac" {
		t.Errorf("Platform = %q, want %q", s.Platform, "mac")
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, "debug")
	}
	if len(s.Presets) != 2 || s.Presets[0] != "colemak" || s.Presets[1] != "dvorak" {
		t.Errorf("Presets = %v", s.Presets)
	}
	if s.OutputDir != "." {
		t.Errorf("OutputDir = %q, unset keys should keep defaults", s.OutputDir)
	}
}

func TestMergeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"malformed", `platform = `, ErrParse},
		{"wrong type", `presets = "colemak"`, ErrParse},
		{"unknown key", `platfrom = "mac"`, ErrInvalidSetting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			if err := s.Merge([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Merge() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvPlatform, EnvOutputDir, EnvLogLevel} {
		t.Setenv(name, "")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Platform != Defaults().Platform {
		t.Errorf("Platform = %q, want default", s.Platform)
	}
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
output_dir = "out"
remap_files = ["tables/extra.json", "/abs/other.yaml"]
keymap_dirs = ["keymaps"]
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if want := filepath.Join(dir, "out"); s.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q", s.OutputDir, want)
	}
	if want := filepath.Join(dir, "tables", "extra.json"); s.RemapFiles[0] != want {
		t.Errorf("RemapFiles[0] = %q, want %q", s.RemapFiles[0], want)
	}
	if s.RemapFiles[1] != "/abs/other.yaml" {
		t.Errorf("RemapFiles[1] = %q, want absolute path untouched", s.RemapFiles[1])
	}
	if want := filepath.Join(dir, "keymaps"); s.KeymapDirs[0] != want {
		t.Errorf("KeymapDirs[0] = %q, want %q", s.KeymapDirs[0], want)
	}
	if want := filepath.Join(dir, "out", "qwerty.txt"); s.OutputPath() != want {
		t.Errorf("OutputPath() = %q, want %q", s.OutputPath(), want)
	}
}

func TestLoadKeepsDefaultOutputDir(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.toml", `
platform = "mac"
presets = ["colemak"]
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.OutputDir != "." {
		t.Errorf("OutputDir = %q, want %q", s.OutputDir, ".")
	}
	if s.LayoutName != DefaultLayoutName {
		t.Errorf("LayoutName = %q, want %q", s.LayoutName, DefaultLayoutName)
	}
	if s.Platform != "mac" || len(s.Presets) != 1 {
		t.Errorf("Load() = %+v, want file values applied", s)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "config.toml", `platform = "amiga"`)
	if _, err := Load(path); !errors.Is(err, ErrInvalidSetting) {
		t.Errorf("Load() error = %v, want ErrInvalidSetting", err)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPlatform, "darwin")
	t.Setenv(EnvLogLevel, "warn")

	path := writeFile(t, t.TempDir(), "config.toml", `platform = "pc"`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p, _ := s.PlatformValue(); p != command.Mac {
		t.Errorf("PlatformValue() = %s, want mac", p)
	}
	if s.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", s.LogLevel, "warn")
	}
}

func TestApplyEnv(t *testing.T) {
	s := Defaults()
	s.ApplyEnv(env(map[string]string{
		EnvPlatform:  "mac",
		EnvOutputDir: "/tmp/kb",
		EnvLogLevel:  "",
	}))

	if s.Platform != "mac" {
		t.Errorf("Platform = %q, want %q", s.Platform, "mac")
	}
	if s.OutputDir != "/tmp/kb" {
		t.Errorf("OutputDir = %q, want %q", s.OutputDir, "/tmp/kb")
	}
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, empty env value should be ignored", s.LogLevel)
	}
}

func TestOverrideWins(t *testing.T) {
	s := Defaults()
	s.ApplyEnv(env(map[string]string{EnvPlatform: "mac", EnvOutputDir: "/env"}))

	err := s.Override(Overrides{Platform: "pc", LayoutName: "custom.txt"})
	if err != nil {
		t.Fatalf("Override() error = %v", err)
	}
	if s.Platform != "pc" {
		t.Errorf("Platform = %q, flag should win", s.Platform)
	}
	if s.OutputDir != "/env" {
		t.Errorf("OutputDir = %q, empty flag should keep env value", s.OutputDir)
	}
	if s.LayoutName != "custom.txt" {
		t.Errorf("LayoutName = %q, want %q", s.LayoutName, "custom.txt")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		ok     bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"mac alias", func(s *Settings) { s.Platform = "macOS" }, true},
		{"bad platform", func(s *Settings) { s.Platform = "amiga" }, false},
		{"bad level", func(s *Settings) { s.LogLevel = "loud" }, false},
		{"upper level", func(s *Settings) { s.LogLevel = "DEBUG" }, true},
		{"empty name", func(s *Settings) { s.LayoutName = "" }, false},
		{"name with dir", func(s *Settings) { s.LayoutName = "../qwerty.txt" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.modify(&s)
			err := s.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidSetting) {
				t.Errorf("Validate() error = %v, want ErrInvalidSetting", err)
			}
		})
	}
}
