package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/keyforge/internal/config"
	"github.com/dshills/keyforge/internal/configure"
	"github.com/dshills/keyforge/internal/input/keymap"
	"github.com/dshills/keyforge/internal/layout"
	"github.com/dshills/keyforge/internal/script"
	"github.com/dshills/keyforge/internal/watch"
)

// Options configures an Application.
type Options struct {
	// ScriptPath is the Lua configuration script. Required.
	ScriptPath string

	// ConfigPath is the settings file. Empty means config.DefaultPath().
	ConfigPath string

	// Overrides carries command-line values; they win over file and env.
	Overrides config.Overrides

	// Logger replaces the logger built from the settings.
	Logger *slog.Logger

	// LogOutput is where the settings-built logger writes. Defaults to stderr.
	LogOutput io.Writer

	// FS receives built layouts. Defaults to OSFS.
	FS FileWriter
}

// Result describes one finished run.
type Result struct {
	// BuildID identifies the run in logs.
	BuildID string

	// Layout is the compiled layout.
	Layout *layout.Layout

	// Path is the file written by Build; empty for Render and Inspect.
	Path string

	// Duration is how long the run took.
	Duration time.Duration
}

// Application holds everything a run needs.
type Application struct {
	settings   config.Settings
	scriptPath string
	logger     *slog.Logger
	fs         FileWriter
	registry   *keymap.Registry
	loader     *keymap.Loader
}

// New loads settings and keymaps and returns a ready Application.
func New(opts Options) (*Application, error) {
	if strings.TrimSpace(opts.ScriptPath) == "" {
		return nil, ErrNoScript
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, NewOperationError("load settings", configPath, err)
	}
	if err := settings.Override(opts.Overrides); err != nil {
		return nil, NewOperationError("apply flags", "", err)
	}

	logger := opts.Logger
	if logger == nil {
		cfg := DefaultLoggerConfig()
		cfg.Level = ParseLogLevel(settings.LogLevel)
		if opts.LogOutput != nil {
			cfg.Output = opts.LogOutput
		}
		logger = NewLogger(cfg)
	}

	fs := opts.FS
	if fs == nil {
		fs = OSFS{}
	}

	app := &Application{
		settings:   settings,
		scriptPath: opts.ScriptPath,
		logger:     logger,
		fs:         fs,
		registry:   keymap.NewRegistry(),
		loader:     keymap.NewLoader(),
	}

	for _, dir := range settings.KeymapDirs {
		app.loader.AddSearchPath(dir)
	}
	if err := app.loader.LoadAndRegister(app.registry); err != nil {
		// Tables that loaded are still registered.
		logger.Warn("some keymap files failed to load", "error", err)
	}

	return app, nil
}

// Settings returns the effective settings.
func (a *Application) Settings() config.Settings {
	return a.settings
}

// Logger returns the application logger.
func (a *Application) Logger() *slog.Logger {
	return a.logger
}

// Keymaps returns every registered keymap, built-in and loaded, by name.
func (a *Application) Keymaps() []*keymap.Keymap {
	return a.registry.All()
}

// Compile runs the pipeline up to the finished layout without writing it.
func (a *Application) Compile(ctx context.Context) (*Result, error) {
	start := time.Now()
	id := uuid.New().String()
	logger := a.logger.With("build_id", id)

	platform, err := a.settings.PlatformValue()
	if err != nil {
		return nil, err
	}
	cfg := configure.New().SetPlatform(platform)

	for _, name := range a.settings.Presets {
		km, err := a.registry.Lookup(name)
		if err != nil {
			return nil, NewOperationError("apply preset", name, err)
		}
		cfg.WithRemappings(km.Remaps)
		logger.Debug("preset applied", "name", km.Name, "remaps", km.Len())
	}

	for _, path := range a.settings.RemapFiles {
		km, err := a.loader.LoadFile(path)
		if err != nil {
			return nil, NewOperationError("load remap file", path, err)
		}
		a.registry.Register(km)
		cfg.WithRemappings(km.Remaps)
		logger.Debug("remap file applied", "path", path, "remaps", km.Len())
	}

	err = script.RunFile(ctx, a.scriptPath, script.Env{
		Configure: cfg,
		Registry:  a.registry,
		Loader:    a.loader,
		Logger:    logger,
	})
	if err != nil {
		return nil, NewOperationError("run script", a.scriptPath, err)
	}

	l := cfg.Make()
	logger.Info("layout compiled",
		"platform", l.Platform(),
		"remaps", l.RemapCount(),
		"macros", l.MacroCount(),
	)

	return &Result{
		BuildID:  id,
		Layout:   l,
		Duration: time.Since(start),
	}, nil
}

// Build compiles the layout and writes it to the configured output path.
func (a *Application) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	res, err := a.Compile(ctx)
	if err != nil {
		return nil, err
	}

	path := a.settings.OutputPath()
	if err := a.fs.MkdirAll(a.settings.OutputDir, 0o755); err != nil {
		return nil, NewOperationError("create output dir", a.settings.OutputDir, err)
	}
	if err := a.fs.WriteFile(path, []byte(res.Layout.String()), 0o644); err != nil {
		return nil, NewOperationError("write layout", path, err)
	}

	res.Path = path
	res.Duration = time.Since(start)
	a.logger.Info("layout written", "build_id", res.BuildID, "path", path)
	return res, nil
}

// Format selects how Render writes a layout.
type Format string

// Render formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Render compiles the layout and writes it to w in the given format.
func (a *Application) Render(ctx context.Context, w io.Writer, format Format) (*Result, error) {
	var encode func(*layout.Layout) (string, error)
	switch format {
	case FormatText, "":
		encode = func(l *layout.Layout) (string, error) { return l.String(), nil }
	case FormatJSON:
		encode = (*layout.Layout).JSON
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	res, err := a.Compile(ctx)
	if err != nil {
		return nil, err
	}

	out, err := encode(res.Layout)
	if err != nil {
		return nil, NewOperationError("encode layout", string(format), err)
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return nil, NewOperationError("write output", "", err)
	}
	return res, nil
}

// Inspect is Render with FormatJSON.
func (a *Application) Inspect(ctx context.Context, w io.Writer) (*Result, error) {
	return a.Render(ctx, w, FormatJSON)
}

// Watch builds once and again whenever the script or a remap file changes,
// until ctx is done.
func (a *Application) Watch(ctx context.Context, delay time.Duration) error {
	files := append([]string{a.scriptPath}, a.settings.RemapFiles...)
	w, err := watch.New(files, watch.WithDelay(delay), watch.WithLogger(a.logger))
	if err != nil {
		return NewOperationError("watch", a.scriptPath, err)
	}
	defer w.Close()

	a.logger.Info("watching", "files", len(files))
	return w.Run(ctx, func(ctx context.Context) error {
		_, err := a.Build(ctx)
		return err
	})
}

// Build is a one-shot New followed by Application.Build.
func Build(ctx context.Context, opts Options) (*Result, error) {
	a, err := New(opts)
	if err != nil {
		return nil, err
	}
	return a.Build(ctx)
}
