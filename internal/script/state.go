package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyforge/internal/configure"
	"github.com/dshills/keyforge/internal/input/keymap"
)

// Env is what a script can reach through the kb table.
type Env struct {
	// Configure receives every kb call. Required.
	Configure *configure.Configure

	// Registry resolves kb.preset names. Defaults to a registry holding the
	// built-in presets.
	Registry *keymap.Registry

	// Loader reads kb.load files. Defaults to a loader with no search paths.
	Loader *keymap.Loader

	// Logger receives print output and kb call traces. Defaults to slog.Default.
	Logger *slog.Logger
}

// State is a sandboxed Lua state bound to a builder.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes calls from
// Go, and Lua execution itself is single-threaded.
type State struct {
	L *lua.LState

	mu     sync.Mutex
	env    Env
	dir    string           // directory kb.load resolves relative paths against
	causes map[string]error // Go errors behind failed kb calls, by message
	closed bool
}

// NewState creates a sandboxed state with the kb table installed.
func NewState(env Env) *State {
	if env.Registry == nil {
		env.Registry = keymap.NewRegistry()
	}
	if env.Loader == nil {
		env.Loader = keymap.NewLoader()
	}
	if env.Logger == nil {
		env.Logger = slog.Default()
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)

	s := &State{L: L, env: env}
	s.installSandbox()
	s.installKB()
	return s
}

// openSafeLibraries opens only the libraries a configuration script needs.
func openSafeLibraries(L *lua.LState) {
	// print, type, pairs, ipairs, tostring, error, pcall...
	lua.OpenBase(L)

	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Not opened: io, os, debug, package.
}

// installSandbox removes the base functions that load code and redirects
// print to the logger.
func (s *State) installSandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "module", "require"} {
		s.L.SetGlobal(name, lua.LNil)
	}

	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		s.env.Logger.Info(strings.Join(parts, "\t"), "source", "script")
		return 0
	}))
}

// DoFile runs a script file. Relative kb.load paths resolve against the
// file's directory.
func (s *State) DoFile(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	s.dir = filepath.Dir(path)
	return s.run(ctx, path, func() error {
		return s.L.DoFile(path)
	})
}

// DoString runs a chunk of Lua code under the given name. Relative kb.load
// paths resolve against the working directory.
func (s *State) DoString(ctx context.Context, name, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	s.dir = ""
	return s.run(ctx, name, func() error {
		return s.L.DoString(code)
	})
}

// run executes fn with ctx attached and converts failures to *Error.
func (s *State) run(ctx context.Context, name string, fn func() error) (err error) {
	s.causes = make(map[string]error)
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = &Error{Script: name, Lua: fmt.Errorf("lua panic: %v", r)}
		}
	}()

	if luaErr := fn(); luaErr != nil {
		cause := s.causeOf(luaErr)
		if cause == nil && ctx.Err() != nil {
			cause = ctx.Err()
		}
		return &Error{Script: name, Lua: luaErr, Cause: cause}
	}
	return nil
}

// causeOf returns the Go error behind the kb call whose message ended the
// run. Failures caught by pcall leave their message behind but never match.
func (s *State) causeOf(luaErr error) error {
	var apiErr *lua.ApiError
	if !errors.As(luaErr, &apiErr) {
		return nil
	}
	msg, ok := apiErr.Object.(lua.LString)
	if !ok {
		return nil
	}
	for m, err := range s.causes {
		if strings.HasSuffix(string(msg), m) {
			return err
		}
	}
	return nil
}

// Close releases the Lua state. It is safe to call more than once.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// RunFile runs one script file in a fresh state.
func RunFile(ctx context.Context, path string, env Env) error {
	s := NewState(env)
	defer s.Close()
	return s.DoFile(ctx, path)
}

// RunString runs one chunk of Lua code in a fresh state.
func RunString(ctx context.Context, name, code string, env Env) error {
	s := NewState(env)
	defer s.Close()
	return s.DoString(ctx, name, code)
}
