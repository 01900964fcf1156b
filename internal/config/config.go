package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Store paths used when none is configured.
const (
	DefaultFilePath   = "field.json"
	DefaultSQLitePath = "fieldlist.db"
)

func defaultStorePath(backend string) string {
	switch backend {
	case BackendFile:
		return DefaultFilePath
	case BackendSQLite:
		return DefaultSQLitePath
	}
	return ""
}

// SwitchBackend sets the backend. A path that is unset or still the previous
// backend's default moves to the new backend's default.
func (s *StoreConfig) SwitchBackend(backend string) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if s.Path == "" || s.Path == defaultStorePath(s.Backend) {
		s.Path = defaultStorePath(backend)
	}
	s.Backend = backend
}

// Config is the on-disk TOML configuration. Flags override it.
type Config struct {
	Store StoreConfig `toml:"store"`
	UI    UIConfig    `toml:"ui"`
}

type StoreConfig struct {
	Backend string `toml:"backend"` // "file" or "sqlite"
	Path    string `toml:"path"`
	Entry   string `toml:"entry"` // sqlite only
	Field   string `toml:"field"` // sqlite only
}

type UIConfig struct {
	Theme string `toml:"theme"` // classic | neon | mono
}

func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendFile,
			Path:    DefaultFilePath,
			Entry:   "default",
			Field:   "items",
		},
		UI: UIConfig{Theme: "classic"},
	}
}

// Dir returns the directory for fieldlist config files,
// using XDG_CONFIG_HOME or falling back to ~/.config.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "fieldlist"), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads path (DefaultPath when empty). A missing file yields
// Default() without error; it is not created.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), err
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML and fills unset values from Default().
func Parse(data []byte) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("parse config.toml: %w", err)
	}
	return normalize(cfg)
}

func normalize(c Config) (Config, error) {
	out := Default()
	switch b := strings.ToLower(strings.TrimSpace(c.Store.Backend)); b {
	case "":
	case BackendFile, BackendSQLite:
		out.Store.SwitchBackend(b)
	default:
		return Default(), fmt.Errorf("store.backend: unknown backend %q", c.Store.Backend)
	}
	if p := strings.TrimSpace(c.Store.Path); p != "" {
		out.Store.Path = p
	}
	if e := strings.TrimSpace(c.Store.Entry); e != "" {
		out.Store.Entry = e
	}
	if f := strings.TrimSpace(c.Store.Field); f != "" {
		out.Store.Field = f
	}
	if th := strings.ToLower(strings.TrimSpace(c.UI.Theme)); th != "" {
		out.UI.Theme = th
	}
	return out, nil
}
