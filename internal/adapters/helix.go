package adapters

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

const (
	helixKey      = "helix"
	helixThemeKey = "theme"
	helixDefault  = "default"
)

// HelixAdapter edits Helix's config.toml. Only the top-level theme field is
// touched; every other field is carried through unchanged.
type HelixAdapter struct {
	path   string
	probe  probe
	logger zerolog.Logger
}

// NewHelixAdapter creates an adapter for <config_dir>/helix/config.toml.
func NewHelixAdapter(opts ...Option) *HelixAdapter {
	o := buildOptions(helixKey, configFile("helix", "config.toml"), helixInstallPaths(), opts)
	return &HelixAdapter{
		path: o.configPath,
		probe: probe{
			paths:   o.installPaths,
			command: "hx",
			args:    []string{"--version"},
			runner:  o.runner,
			logger:  *o.logger,
		},
		logger: *o.logger,
	}
}

func helixInstallPaths() []string {
	paths := []string{
		"/usr/local/bin/hx",
		"/usr/bin/hx",
		"/usr/local/bin/helix",
		"/usr/bin/helix",
	}
	if runtime.GOOS == "darwin" {
		paths = append(paths, "/opt/homebrew/bin/hx")
	}
	return paths
}

func (a *HelixAdapter) readDocument() (map[string]any, error) {
	content, err := readConfigFile(a.AppName(), a.path)
	if err != nil {
		return nil, err
	}
	doc := make(map[string]any)
	if strings.TrimSpace(content) == "" {
		return doc, nil
	}
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, themeError(a.AppName(), "failed to parse config.toml", err)
	}
	if theme, ok := doc[helixThemeKey]; ok {
		if _, isString := theme.(string); !isString {
			return nil, themeError(a.AppName(), fmt.Sprintf("theme must be a string, got %T", theme), nil)
		}
	}
	return doc, nil
}

// SetTheme sets the top-level theme field.
func (a *HelixAdapter) SetTheme(theme string) error {
	doc, err := a.readDocument()
	if err != nil {
		return err
	}
	doc[helixThemeKey] = theme

	data, err := toml.Marshal(doc)
	if err != nil {
		return themeError(a.AppName(), "failed to serialize config", err)
	}
	a.logger.Debug().Str("path", a.path).Str("theme", theme).Msg("writing theme")
	return writeConfigFile(a.AppName(), a.path, string(data))
}

// GetTheme returns the theme field or "default".
func (a *HelixAdapter) GetTheme() (string, error) {
	doc, err := a.readDocument()
	if err != nil {
		return "", err
	}
	if theme, _ := doc[helixThemeKey].(string); theme != "" {
		return theme, nil
	}
	return helixDefault, nil
}

// IsAvailable reports whether Helix is installed.
func (a *HelixAdapter) IsAvailable(ctx context.Context) bool {
	return a.probe.available(ctx)
}

// AppName returns "Helix".
func (a *HelixAdapter) AppName() string { return "Helix" }

// ConfigKey returns "helix".
func (a *HelixAdapter) ConfigKey() string { return helixKey }

// ConfigPath returns the Helix config.toml path.
func (a *HelixAdapter) ConfigPath() string { return a.path }

// DefaultThemes returns Helix's built-in theme choices.
func (a *HelixAdapter) DefaultThemes() ThemeMapping {
	return ThemeMapping{
		"dark":  "onedark",
		"light": "ayu_light",
	}
}
