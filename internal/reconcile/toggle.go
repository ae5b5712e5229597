package reconcile

import (
	"context"

	"github.com/themesync/themesync/internal/config"
)

// ToggleState is everything the toggle decision depends on.
type ToggleState struct {
	Current  *string
	Previous *string
	Catalog  []string // theme names in catalog order
	Default  string
}

// ResolveToggle picks the theme to switch to:
//  1. current and previous set: previous
//  2. only current set: the first catalog theme that is not current
//  3. current unset: the default theme
//
// Case 2 with a single-theme catalog returns ErrToggleImpossible.
func ResolveToggle(state ToggleState) (string, error) {
	if state.Current == nil {
		return state.Default, nil
	}
	if state.Previous != nil {
		return *state.Previous, nil
	}
	if len(state.Catalog) <= 1 {
		return "", ErrToggleImpossible
	}
	for _, name := range state.Catalog {
		if name != *state.Current {
			return name, nil
		}
	}
	return state.Default, nil
}

// ToggleTarget resolves the toggle target for cfg and checks that it exists.
func ToggleTarget(cfg *config.Config) (string, error) {
	target, err := ResolveToggle(ToggleState{
		Current:  cfg.Settings.CurrentTheme,
		Previous: cfg.Settings.PreviousTheme,
		Catalog:  cfg.ThemeNames(),
		Default:  cfg.Settings.DefaultTheme,
	})
	if err != nil {
		return "", err
	}
	if !cfg.HasTheme(target) {
		return "", &ThemeNotFoundError{Name: target}
	}
	return target, nil
}

// Toggle applies the theme chosen by ToggleTarget.
func (e *Engine) Toggle(ctx context.Context, cfg *config.Config) (*Result, error) {
	target, err := ToggleTarget(cfg)
	if err != nil {
		return nil, err
	}
	e.logger.Debug().Str("target", target).Msg("toggle resolved")
	return e.Apply(ctx, cfg, target)
}
