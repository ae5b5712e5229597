package reconcile

import (
	"context"

	"github.com/themesync/themesync/internal/config"
)

// AppStatus describes one registered application.
type AppStatus struct {
	App       string `json:"app"`
	Key       string `json:"key"`
	Path      string `json:"path"`
	Available bool   `json:"available"`
	Enabled   bool   `json:"enabled"`
	Theme     string `json:"theme,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Status reports availability and the current theme of every adapter.
// Themes are only read from available applications.
func (e *Engine) Status(ctx context.Context, cfg *config.Config) []AppStatus {
	statuses := e.Apps(ctx, cfg)
	for i, adapter := range e.registry.List() {
		if !statuses[i].Available {
			continue
		}
		theme, err := adapter.GetTheme()
		if err != nil {
			statuses[i].Error = err.Error()
			continue
		}
		statuses[i].Theme = theme
	}
	return statuses
}

// Apps lists the registered adapters with their availability.
func (e *Engine) Apps(ctx context.Context, cfg *config.Config) []AppStatus {
	list := e.registry.List()
	statuses := make([]AppStatus, 0, len(list))
	for _, adapter := range list {
		status := AppStatus{
			App:       adapter.AppName(),
			Key:       adapter.ConfigKey(),
			Path:      adapter.ConfigPath(),
			Available: adapter.IsAvailable(ctx),
			Enabled:   true,
		}
		if app, ok := cfg.Apps[adapter.ConfigKey()]; ok {
			status.Enabled = app.Enabled
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// AppValue is one application's value for a theme.
type AppValue struct {
	App   string `json:"app"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ThemeEntry is a catalog theme with its per-app values in registry order.
type ThemeEntry struct {
	Name    string     `json:"name"`
	Current bool       `json:"current"`
	Values  []AppValue `json:"values"`
}

// Themes lists the catalog sorted by name.
func (e *Engine) Themes(cfg *config.Config) []ThemeEntry {
	current := cfg.CurrentTheme()
	names := cfg.ThemeNames()
	entries := make([]ThemeEntry, 0, len(names))
	for _, name := range names {
		mapping := cfg.Themes[name]
		entry := ThemeEntry{
			Name:    name,
			Current: cfg.Settings.CurrentTheme != nil && name == current,
			Values:  []AppValue{},
		}
		for _, adapter := range e.registry.List() {
			if value, ok := mapping[adapter.ConfigKey()]; ok {
				entry.Values = append(entry.Values, AppValue{
					App:   adapter.AppName(),
					Key:   adapter.ConfigKey(),
					Value: value,
				})
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
