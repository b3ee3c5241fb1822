package config

import "errors"

// Errors returned by configuration operations.
var (
	// ErrInvalidSetting indicates a setting has a value keyforge cannot use.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrParse indicates the settings file is not valid TOML.
	ErrParse = errors.New("settings file parse error")
)
