package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"

	"github.com/dshills/keyforge/internal/app"
	"github.com/dshills/keyforge/internal/config"
	"github.com/dshills/keyforge/internal/input/keymap"
)

// CLI is the command-line interface.
type CLI struct {
	Version  kong.VersionFlag `help:"Show version information"`
	Config   string           `help:"Path to settings file (default: user config dir)" short:"c" type:"path"`
	LogLevel string           `help:"Log level (debug, info, warn, error)"`
	Platform string           `help:"Host platform (pc, mac)" short:"p"`

	Build   BuildCmd   `cmd:"" help:"Compile a script and write the layout file"`
	Print   PrintCmd   `cmd:"" help:"Compile a script and print the layout"`
	Inspect InspectCmd `cmd:"" help:"Compile a script and print the layout as JSON"`
	Watch   WatchCmd   `cmd:"" help:"Rebuild the layout file whenever the script changes"`
	Presets PresetsCmd `cmd:"" help:"List available remap tables"`
}

// options builds app options from the global flags.
func (c *CLI) options(script string, o config.Overrides) app.Options {
	o.Platform = c.Platform
	o.LogLevel = c.LogLevel
	return app.Options{
		ScriptPath: script,
		ConfigPath: c.Config,
		Overrides:  o,
	}
}

// BuildCmd writes the layout file.
type BuildCmd struct {
	Script string `arg:"" help:"Lua configuration script" type:"existingfile"`
	OutDir string `help:"Directory to write the layout to" short:"o" type:"path"`
	Name   string `help:"Layout file name (default qwerty.txt)" short:"n"`
}

// Run executes the build command.
func (b *BuildCmd) Run(ctx context.Context, cli *CLI) error {
	a, err := app.New(cli.options(b.Script, config.Overrides{OutputDir: b.OutDir, LayoutName: b.Name}))
	if err != nil {
		return err
	}

	res, err := a.Build(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d remaps, %d macros)\n", res.Path, res.Layout.RemapCount(), res.Layout.MacroCount())
	return nil
}

// PrintCmd writes the layout to stdout.
type PrintCmd struct {
	Script string `arg:"" help:"Lua configuration script" type:"existingfile"`
}

// Run executes the print command.
func (p *PrintCmd) Run(ctx context.Context, cli *CLI) error {
	a, err := app.New(cli.options(p.Script, config.Overrides{}))
	if err != nil {
		return err
	}
	_, err = a.Render(ctx, os.Stdout, app.FormatText)
	return err
}

// InspectCmd writes the layout as JSON to stdout.
type InspectCmd struct {
	Script string `arg:"" help:"Lua configuration script" type:"existingfile"`
}

// Run executes the inspect command.
func (i *InspectCmd) Run(ctx context.Context, cli *CLI) error {
	a, err := app.New(cli.options(i.Script, config.Overrides{}))
	if err != nil {
		return err
	}
	_, err = a.Inspect(ctx, os.Stdout)
	return err
}

// WatchCmd rebuilds on change until interrupted.
type WatchCmd struct {
	Script string        `arg:"" help:"Lua configuration script" type:"existingfile"`
	OutDir string        `help:"Directory to write the layout to" short:"o" type:"path"`
	Name   string        `help:"Layout file name (default qwerty.txt)" short:"n"`
	Delay  time.Duration `help:"How long changes must settle before rebuilding" default:"200ms"`
}

// Run executes the watch command.
func (w *WatchCmd) Run(ctx context.Context, cli *CLI) error {
	a, err := app.New(cli.options(w.Script, config.Overrides{OutputDir: w.OutDir, LayoutName: w.Name}))
	if err != nil {
		return err
	}

	err = a.Watch(ctx, w.Delay)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// PresetsCmd lists remap tables.
type PresetsCmd struct{}

// Run executes the presets command.
func (p *PresetsCmd) Run(cli *CLI) error {
	settings, err := config.Load(cli.configPath())
	if err != nil {
		return err
	}

	registry := keymap.NewRegistry()
	loader := keymap.NewLoader()
	for _, dir := range settings.KeymapDirs {
		loader.AddSearchPath(dir)
	}
	loadErr := loader.LoadAndRegister(registry)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tREMAPS\tSOURCE")
	for _, km := range registry.All() {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", km.Name, km.Len(), km.Source)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if loadErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", strings.ReplaceAll(loadErr.Error(), "\n", "; "))
	}
	return nil
}

func (c *CLI) configPath() string {
	if c.Config != "" {
		return c.Config
	}
	return config.DefaultPath()
}
