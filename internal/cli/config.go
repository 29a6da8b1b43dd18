package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pipremove/pkg/errors"
)

// Config holds user preferences read from the optional config file at
// ~/.config/pipremove/config.toml. All fields default to their zero value.
type Config struct {
	// Protected extends the built-in whitelist of packages that are never
	// removed.
	Protected []string `toml:"protected"`
	// Strict aborts a run when any requested target is not installed.
	Strict bool `toml:"strict"`
	// AssumeYes skips the confirmation prompt, like passing --yes.
	AssumeYes bool `toml:"assume_yes"`
	// Python overrides the interpreter used for scanning and uninstalling.
	Python string `toml:"python"`
}

// loadConfig reads the config file at path. A missing file yields a zero
// Config without error; a malformed file is an INVALID_CONFIG error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parsing %s", path)
	}
	return cfg, nil
}

// loadDefaultConfig reads the config from the XDG config directory.
func loadDefaultConfig() (Config, error) {
	dir, err := configDir()
	if err != nil {
		return Config{}, nil // no home dir, run with defaults
	}
	return loadConfig(filepath.Join(dir, "config.toml"))
}
