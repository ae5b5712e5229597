package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrThemeNotFound is returned when a theme name is not in the catalog.
	ErrThemeNotFound = errors.New("theme not found")
	// ErrToggleImpossible is returned when the catalog has a single theme
	// and there is no previous theme to go back to.
	ErrToggleImpossible = errors.New("cannot toggle: only one theme available")
)

// ThemeNotFoundError names the missing theme.
type ThemeNotFoundError struct {
	Name string
}

func (e *ThemeNotFoundError) Error() string {
	return fmt.Sprintf("theme %q not found in configuration", e.Name)
}

// Is makes errors.Is(err, ErrThemeNotFound) match.
func (e *ThemeNotFoundError) Is(target error) bool {
	return target == ErrThemeNotFound
}
