// Package adapterstest provides an in-memory ThemeAdapter for tests.
package adapterstest

import (
	"context"
	"sync"

	"github.com/themesync/themesync/internal/adapters"
)

// Fake is an in-memory adapter with controllable availability and errors.
type Fake struct {
	Key       string
	Name      string
	Path      string
	Defaults  adapters.ThemeMapping
	Available bool
	SetErr    error
	GetErr    error
	Fallback  string

	mu    sync.Mutex
	theme string
	set   []string
}

// New returns an available fake adapter with the given key and defaults.
func New(key string, defaults adapters.ThemeMapping) *Fake {
	return &Fake{
		Key:       key,
		Name:      key,
		Defaults:  defaults,
		Available: true,
		Fallback:  "default",
	}
}

// SetTheme records theme and returns SetErr when set.
func (f *Fake) SetTheme(theme string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set = append(f.set, theme)
	if f.SetErr != nil {
		return f.SetErr
	}
	f.theme = theme
	return nil
}

// GetTheme returns the last theme set, or Fallback before any set.
func (f *Fake) GetTheme() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return "", f.GetErr
	}
	if f.theme == "" {
		return f.Fallback, nil
	}
	return f.theme, nil
}

// IsAvailable returns Available.
func (f *Fake) IsAvailable(ctx context.Context) bool { return f.Available }

// AppName returns Name.
func (f *Fake) AppName() string { return f.Name }

// ConfigKey returns Key.
func (f *Fake) ConfigKey() string { return f.Key }

// ConfigPath returns Path.
func (f *Fake) ConfigPath() string { return f.Path }

// DefaultThemes returns a copy of Defaults.
func (f *Fake) DefaultThemes() adapters.ThemeMapping {
	out := make(adapters.ThemeMapping, len(f.Defaults))
	for k, v := range f.Defaults {
		out[k] = v
	}
	return out
}

// SetCalls returns every theme passed to SetTheme.
func (f *Fake) SetCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.set...)
}
