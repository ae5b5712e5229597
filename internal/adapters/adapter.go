// Package adapters integrates individual applications' theme settings.
package adapters

import (
	"context"
	"fmt"
)

// ThemeMapping maps a logical theme name or adapter key to an app-specific value.
type ThemeMapping map[string]string

// ThemeAdapter reads and rewrites one application's theme setting.
type ThemeAdapter interface {
	// SetTheme rewrites the application's config so its theme is theme.
	// A missing config file is treated as empty.
	SetTheme(theme string) error

	// GetTheme returns the configured theme, or the application's built-in
	// default when none is set.
	GetTheme() (string, error)

	// IsAvailable reports whether the application is installed.
	IsAvailable(ctx context.Context) bool

	// AppName is the human-readable label.
	AppName() string

	// ConfigKey identifies the adapter in theme mappings and app configs.
	ConfigKey() string

	// DefaultThemes maps logical theme names to this app's values.
	DefaultThemes() ThemeMapping

	// ConfigPath is the file the adapter reads and writes.
	ConfigPath() string
}

// ThemeError describes an I/O or parse failure for a single application.
type ThemeError struct {
	Message string
	AppName string
	Err     error
}

func (e *ThemeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("theme error for %s: %s: %v", e.AppName, e.Message, e.Err)
	}
	return fmt.Sprintf("theme error for %s: %s", e.AppName, e.Message)
}

func (e *ThemeError) Unwrap() error {
	return e.Err
}

func themeError(appName, message string, err error) *ThemeError {
	return &ThemeError{Message: message, AppName: appName, Err: err}
}
