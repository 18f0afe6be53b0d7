// Package config handles configuration management for redate.
//
// Configuration is layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. user config: $XDG_CONFIG_HOME/redate/config.toml (or .yaml/.yml)
//  3. .redate.toml in the directory being processed
//  4. a file given with --config
//  5. REDATE_* variables from a .env file, then from the environment
//  6. command-line flags
package config
