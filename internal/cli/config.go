package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds optional user preferences loaded from
// ~/.config/recviz/config.toml. All fields default to zero values; the
// commands fall back to their built-in defaults for unset fields.
type Config struct {
	// Formats is the default output format list (html, svg, png, dot, json).
	Formats []string `toml:"formats"`

	// CacheDir overrides the XDG cache directory.
	CacheDir string `toml:"cache_dir"`

	// RedisAddr enables the Redis cache backend for serve mode
	// (e.g. "localhost:6379"). Empty means file cache.
	RedisAddr string `toml:"redis_addr"`
}

// LoadConfig reads the user config file. A missing or unreadable file
// yields the zero config - preferences are optional.
func LoadConfig() Config {
	path, err := configPath()
	if err != nil {
		return Config{}
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) Config {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// configPath returns the config file path using XDG standard
// (~/.config/recviz/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
