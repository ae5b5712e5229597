package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/themesync/themesync/internal/adapters"
	"github.com/themesync/themesync/internal/logging"
)

// ErrConfigPathRequired is returned when a load or save has no path.
var ErrConfigPathRequired = errors.New("config path is required")

// configDirFunc resolves the themesync config directory. Tests override it.
var configDirFunc = defaultConfigDir

func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "themesync")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "themesync")
	}
	return filepath.Join(".", ".config", "themesync")
}

// DefaultPath returns the default location of config.yaml.
func DefaultPath() string {
	return filepath.Join(configDirFunc(), "config.yaml")
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads the config at path. A missing file yields NewWithDefaults;
// a malformed file is an error.
func Load(path string, registry *adapters.Registry) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrConfigPathRequired
	}

	logger := logging.Component("config")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("no config file, using defaults")
			return NewWithDefaults(registry), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, key := range cfg.UnknownApps(registry) {
		logger.Warn().Str("path", path).Str("app", key).Msg("config lists an unsupported app")
	}
	logger.Debug().Str("path", path).Int("themes", len(cfg.Themes)).Msg("loaded config")
	return cfg, nil
}

// ErrEmptyConfig is returned when a config file has no YAML document.
var ErrEmptyConfig = errors.New("config document is empty")

var (
	requiredSections = []string{"themes", "apps", "settings"}
	requiredSettings = []string{"default_theme", "backup_configs", "parallel_execution"}
)

// Parse decodes a YAML config document. The themes, apps and settings
// sections and the non-optional settings fields must all be present.
func Parse(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, ErrEmptyConfig
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, ErrEmptyConfig
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: config must be a mapping", root.Line)
	}
	if err := requireKeys(root, "", requiredSections); err != nil {
		return nil, err
	}
	if settings := mappingValue(root, "settings"); settings != nil {
		if settings.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: settings must be a mapping", settings.Line)
		}
		if err := requireKeys(settings, "settings.", requiredSettings); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := root.Decode(&cfg); err != nil {
		return nil, err
	}
	if cfg.Themes == nil {
		cfg.Themes = make(map[string]adapters.ThemeMapping)
	}
	if cfg.Apps == nil {
		cfg.Apps = make(map[string]AppConfig)
	}
	return &cfg, nil
}

func requireKeys(node *yaml.Node, prefix string, keys []string) error {
	for _, key := range keys {
		if mappingValue(node, key) == nil {
			return fmt.Errorf("missing field %s%s", prefix, key)
		}
	}
	return nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Save writes the whole config to path, creating parent directories.
// The file is replaced atomically via a temp file and rename.
func Save(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return ErrConfigPathRequired
	}

	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod config %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace config %s: %w", path, err)
	}

	logger := logging.Component("config")
	logger.Debug().Str("path", path).Msg("saved config")
	return nil
}

// FileStore persists a Config at a fixed path.
type FileStore struct {
	Path string
}

// Save writes cfg to the store's path.
func (s FileStore) Save(cfg *Config) error {
	return Save(s.Path, cfg)
}
