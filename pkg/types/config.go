// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "console" for human-readable output or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config holds the settings the CLI resolves from flags, environment and the
// optional bettercls.yaml file.
type Config struct {
	// DataDir overrides the data source directory. Empty or "0" means not
	// overridden.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// SettingsDB is the path of the SQLite settings database that remembers
	// the active data source between runs.
	SettingsDB string `json:"settings_db" yaml:"settings_db" mapstructure:"settings_db"`

	// Format selects query output: table, json or yaml.
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`
}
