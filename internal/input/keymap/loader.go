package keymap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/keyforge/internal/input/key"
	"github.com/dshills/keyforge/internal/layout"
)

// Loader loads keymaps from JSON and YAML files.
type Loader struct {
	// searchPaths are directories to search for keymap files.
	searchPaths []string
}

// NewLoader creates a new keymap loader.
func NewLoader() *Loader {
	return &Loader{
		searchPaths: make([]string, 0),
	}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a keymap from a JSON file, or a YAML file when the extension
// is .yaml or .yml. A file without a name is named after the file.
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}

	var km *Keymap
	if isYAML(path) {
		km, err = ParseYAML(data)
	} else {
		km, err = Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if km.Name == "" {
		km.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	km.Source = path
	return km, nil
}

// LoadReader loads a JSON keymap from a reader.
func (l *Loader) LoadReader(r io.Reader) (*Keymap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	return Parse(data)
}

// keymapPatterns are the file patterns LoadAll picks up in a search path.
var keymapPatterns = []string{"*.json", "*.yaml", "*.yml"}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadAll loads every keymap file from the search paths. Files that fail to
// load are skipped and their errors returned together.
func (l *Loader) LoadAll() ([]*Keymap, error) {
	keymaps := make([]*Keymap, 0)
	var errs []error

	for _, dir := range l.searchPaths {
		var matches []string
		for _, pattern := range keymapPatterns {
			found, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				continue
			}
			matches = append(matches, found...)
		}

		for _, path := range matches {
			km, err := l.LoadFile(path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			keymaps = append(keymaps, km)
		}
	}

	return keymaps, errors.Join(errs...)
}

// LoadAndRegister loads all keymaps and registers them. Keymaps that loaded
// are registered even when others failed.
func (l *Loader) LoadAndRegister(registry *Registry) error {
	keymaps, err := l.LoadAll()
	for _, km := range keymaps {
		registry.Register(km)
	}
	return err
}

// Parse reads a keymap from JSON.
func Parse(data []byte) (*Keymap, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidKeymap)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidKeymap)
	}

	remaps := doc.Get("remaps")
	if !remaps.Exists() {
		return nil, fmt.Errorf("%w: missing \"remaps\"", ErrInvalidKeymap)
	}
	if !remaps.IsObject() {
		return nil, fmt.Errorf("%w: \"remaps\" must be an object", ErrInvalidKeymap)
	}

	km := NewKeymap(doc.Get("name").String())

	var parseErr error
	remaps.ForEach(func(k, v gjson.Result) bool {
		from, err := key.ParseKeyLayer(k.String())
		if err != nil {
			parseErr = fmt.Errorf("%w: source %q: %w", ErrInvalidKeymap, k.String(), err)
			return false
		}

		target, err := parseTarget(v)
		if err != nil {
			parseErr = fmt.Errorf("%w: target of %q: %w", ErrInvalidKeymap, k.String(), err)
			return false
		}

		km.Remaps[from] = target
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return km, nil
}

func parseTarget(v gjson.Result) (layout.Target, error) {
	switch v.Type {
	case gjson.Null:
		return layout.Dead(), nil
	case gjson.String:
		to, err := key.ParseKeyLayer(v.String())
		if err != nil {
			return layout.Target{}, err
		}
		return layout.To(to), nil
	default:
		return layout.Target{}, fmt.Errorf("expected a key name or null, got %s", v.Type)
	}
}
