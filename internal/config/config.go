// Package config loads songbook settings from TOML files.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName             = "songbook"
	dbFileName          = "songbook.db"
	logFileName         = "songbook.log"
	defaultQueryTimeout = 5 * time.Second
	defaultLogLevel     = "info"
)

// Config holds songbook settings.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Search   SearchConfig   `koanf:"search"`
	Log      LogConfig      `koanf:"log"`
	UI       UIConfig       `koanf:"ui"`
}

// DatabaseConfig locates the song database.
type DatabaseConfig struct {
	Path         string        `koanf:"path"`          // SQLite file (default: $XDG_DATA_HOME/songbook/songbook.db)
	StartCommand string        `koanf:"start_command"` // run once when the first connection fails, then retry
	QueryTimeout time.Duration `koanf:"query_timeout"` // per-call deadline (default: 5s)
}

// SearchConfig controls live search.
type SearchConfig struct {
	CaseSensitive bool `koanf:"case_sensitive"`
}

// LogConfig controls the diagnostics log file.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/songbook/songbook.log
	Level string `koanf:"level"` // logrus level name (default: info)
}

// UIConfig holds display options.
type UIConfig struct {
	Debug bool `koanf:"debug"` // show mode and selection state under the table
}

// Load reads the config files in order, later files overriding earlier ones,
// then applies defaults.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order (last wins), skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(xdg.DataHome, appName, dbFileName)
	} else {
		c.Database.Path = expandPath(c.Database.Path)
	}

	if c.Database.QueryTimeout <= 0 {
		c.Database.QueryTimeout = defaultQueryTimeout
	}

	if c.Log.File == "" {
		c.Log.File = filepath.Join(xdg.StateHome, appName, logFileName)
	} else {
		c.Log.File = expandPath(c.Log.File)
	}

	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/songbook/config.toml
	homePath := ""
	if home, err := os.UserHomeDir(); err == nil {
		homePath = filepath.Join(home, ".config", appName, "config.toml")
		paths = append(paths, homePath)
	}

	// 2. $XDG_CONFIG_HOME/songbook/config.toml when it points elsewhere
	if p := filepath.Join(xdg.ConfigHome, appName, "config.toml"); p != homePath {
		paths = append(paths, p)
	}

	// 3. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
