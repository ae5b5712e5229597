// Package config holds the persisted themesync state: the theme catalog,
// per-app settings and the current/previous theme pointers.
package config

import (
	"sort"

	"github.com/themesync/themesync/internal/adapters"
)

const (
	// DefaultTheme is used when no theme has been applied yet.
	DefaultTheme = "dark"
	// MethodAuto lets the adapter locate its own config file.
	MethodAuto = "auto"
)

// Config is the whole persisted document. It is always saved as one unit.
type Config struct {
	Themes   map[string]adapters.ThemeMapping `yaml:"themes" json:"themes"`
	Apps     map[string]AppConfig             `yaml:"apps" json:"apps"`
	Settings Settings                         `yaml:"settings" json:"settings"`
}

// AppConfig is per-adapter configuration. None of its fields change
// reconciliation behaviour yet.
type AppConfig struct {
	Enabled bool    `yaml:"enabled" json:"enabled"`
	Path    *string `yaml:"path" json:"path"`
	Method  string  `yaml:"method" json:"method"`
}

// Settings holds global options and theme state.
type Settings struct {
	DefaultTheme string `yaml:"default_theme" json:"default_theme"`
	// BackupConfigs and ParallelExecution are declared but not acted on.
	BackupConfigs     bool    `yaml:"backup_configs" json:"backup_configs"`
	ParallelExecution bool    `yaml:"parallel_execution" json:"parallel_execution"`
	CurrentTheme      *string `yaml:"current_theme" json:"current_theme"`
	PreviousTheme     *string `yaml:"previous_theme" json:"previous_theme"`
}

// NewWithDefaults builds a fresh Config from every adapter's default themes.
//
// The catalog holds the union of theme names across adapters. Each theme maps
// only the adapters that have an opinion on it.
func NewWithDefaults(registry *adapters.Registry) *Config {
	names := make(map[string]struct{})
	for _, adapter := range registry.List() {
		for name := range adapter.DefaultThemes() {
			names[name] = struct{}{}
		}
	}

	themes := make(map[string]adapters.ThemeMapping, len(names))
	for name := range names {
		mapping := make(adapters.ThemeMapping)
		for _, adapter := range registry.List() {
			if value, ok := adapter.DefaultThemes()[name]; ok {
				mapping[adapter.ConfigKey()] = value
			}
		}
		themes[name] = mapping
	}

	apps := make(map[string]AppConfig, registry.Len())
	for _, adapter := range registry.List() {
		apps[adapter.ConfigKey()] = AppConfig{
			Enabled: true,
			Method:  MethodAuto,
		}
	}

	return &Config{
		Themes: themes,
		Apps:   apps,
		Settings: Settings{
			DefaultTheme:      DefaultTheme,
			BackupConfigs:     true,
			ParallelExecution: true,
		},
	}
}

// HasTheme reports whether name is in the catalog.
func (c *Config) HasTheme(name string) bool {
	_, ok := c.Themes[name]
	return ok
}

// ThemeNames returns the catalog's theme names in sorted order.
func (c *Config) ThemeNames() []string {
	names := make([]string, 0, len(c.Themes))
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UpdateThemeState records name as current and shifts the old current theme
// to previous.
func (c *Config) UpdateThemeState(name string) {
	c.Settings.PreviousTheme = c.Settings.CurrentTheme
	current := name
	c.Settings.CurrentTheme = &current
}

// CurrentTheme returns the current theme name, or "" when unset.
func (c *Config) CurrentTheme() string {
	return deref(c.Settings.CurrentTheme)
}

// PreviousTheme returns the previous theme name, or "" when unset.
func (c *Config) PreviousTheme() string {
	return deref(c.Settings.PreviousTheme)
}

// UnknownApps returns the configured app keys that no registered adapter
// handles, sorted.
func (c *Config) UnknownApps(registry *adapters.Registry) []string {
	var unknown []string
	for key := range c.Apps {
		if registry.Get(key) == nil {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
