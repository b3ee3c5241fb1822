// Package config loads keyforge settings.
//
// Settings are layered, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← KEYFORGE_*
//	├─────────────────────────────┤
//	│  2. Settings File           │  ← ~/.config/keyforge/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A settings file looks like:
//
//	platform = "mac"
//	output_dir = "~/kinesis/active"
//	log_level = "debug"
//	presets = ["colemak"]
//	remap_files = ["extra.json"]
//	keymap_dirs = ["~/.config/keyforge/keymaps"]
//
// Relative paths in the file resolve against the file's directory. Flags are
// applied by the caller with Settings.Override.
package config
