// Package keymap provides whole-keyboard remap tables, such as alternate base
// layouts, that can be merged into a configuration in one call.
//
// # Key Concepts
//
// Keymap: a named remap table plus where it came from.
//
// Registry: the set of keymaps available by name. NewRegistry starts with the
// built-in presets; keymaps loaded from disk are added on top.
//
// # File Format
//
// Keymap files are JSON objects. Source and target keys use the names accepted
// by key.ParseKeyLayer; a "kp:" prefix addresses the keypad layer and a null
// target makes a dead key:
//
//	{
//	    "name": "colemak-dh",
//	    "remaps": {
//	        "t": "b",
//	        "kp:enter": "kp:space",
//	        "`": null
//	    }
//	}
//
// Files ending in .yaml or .yml hold the same document in YAML. Keys that YAML
// treats as syntax, such as the backtick, must be quoted:
//
//	name: colemak-dh
//	remaps:
//	  t: b
//	  kp:enter: kp:space
//	  "`": ~
//
// # Usage
//
//	registry := keymap.NewRegistry()
//	loader := keymap.NewLoader()
//	loader.AddSearchPath("~/.config/keyforge/keymaps")
//	if err := loader.LoadAndRegister(registry); err != nil {
//	    return err
//	}
//
//	km, ok := registry.Get("colemak")
//	if ok {
//	    cfg.WithRemappings(km.Remaps)
//	}
package keymap
