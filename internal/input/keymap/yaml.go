package keymap

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dshills/keyforge/internal/input/key"
	"github.com/dshills/keyforge/internal/layout"
)

// yamlKeymap mirrors the JSON document. Remaps stays a node so key names are
// read verbatim instead of being coerced to booleans or numbers.
type yamlKeymap struct {
	Name   string    `yaml:"name"`
	Remaps yaml.Node `yaml:"remaps"`
}

// ParseYAML reads a keymap from YAML. The document has the same shape as the
// JSON format; a null target (~ or null) makes a dead key.
func ParseYAML(data []byte) (*Keymap, error) {
	var doc yamlKeymap
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeymap, err)
	}

	switch doc.Remaps.Kind {
	case 0:
		return nil, fmt.Errorf("%w: missing \"remaps\"", ErrInvalidKeymap)
	case yaml.MappingNode:
	default:
		return nil, fmt.Errorf("%w: \"remaps\" must be a mapping", ErrInvalidKeymap)
	}

	km := NewKeymap(doc.Name)
	content := doc.Remaps.Content
	for i := 0; i+1 < len(content); i += 2 {
		k, v := content[i], content[i+1]

		from, err := key.ParseKeyLayer(k.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: source %q (line %d): %w", ErrInvalidKeymap, k.Value, k.Line, err)
		}

		target, err := yamlTarget(v)
		if err != nil {
			return nil, fmt.Errorf("%w: target of %q (line %d): %w", ErrInvalidKeymap, k.Value, v.Line, err)
		}
		km.Remaps[from] = target
	}
	return km, nil
}

func yamlTarget(n *yaml.Node) (layout.Target, error) {
	if n.Kind != yaml.ScalarNode {
		return layout.Target{}, fmt.Errorf("expected a key name or null")
	}
	if n.Tag == "!!null" {
		return layout.Dead(), nil
	}
	to, err := key.ParseKeyLayer(n.Value)
	if err != nil {
		return layout.Target{}, err
	}
	return layout.To(to), nil
}
