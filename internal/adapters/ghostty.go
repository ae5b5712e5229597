package adapters

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

const (
	ghosttyKey      = "ghostty"
	ghosttyThemeKey = "theme"
	ghosttyDefault  = "default"
)

// GhosttyAdapter edits Ghostty's line-oriented "key = value" config.
type GhosttyAdapter struct {
	path   string
	probe  probe
	logger zerolog.Logger
}

// NewGhosttyAdapter creates an adapter for <config_dir>/ghostty/config.
func NewGhosttyAdapter(opts ...Option) *GhosttyAdapter {
	o := buildOptions(ghosttyKey, configFile("ghostty", "config"), ghosttyInstallPaths(), opts)
	return &GhosttyAdapter{
		path: o.configPath,
		probe: probe{
			paths:   o.installPaths,
			command: "ghostty",
			args:    []string{"--version"},
			runner:  o.runner,
			logger:  *o.logger,
		},
		logger: *o.logger,
	}
}

func ghosttyInstallPaths() []string {
	if runtime.GOOS == "darwin" {
		return []string{
			"/Applications/Ghostty.app/Contents/MacOS/ghostty",
			"/opt/homebrew/bin/ghostty",
			"/usr/local/bin/ghostty",
		}
	}
	return []string{
		"/usr/local/bin/ghostty",
		"/usr/bin/ghostty",
	}
}

// SetTheme replaces the theme line. Malformed lines are dropped on rewrite.
func (a *GhosttyAdapter) SetTheme(theme string) error {
	current, err := readConfigFile(a.AppName(), a.path)
	if err != nil {
		return err
	}
	a.logger.Debug().Str("path", a.path).Str("theme", theme).Msg("writing theme")
	return writeConfigFile(a.AppName(), a.path, updateThemeInConfig(current, theme))
}

// GetTheme returns the configured theme or "default".
func (a *GhosttyAdapter) GetTheme() (string, error) {
	current, err := readConfigFile(a.AppName(), a.path)
	if err != nil {
		return "", err
	}
	if theme, ok := extractThemeFromConfig(current); ok {
		return theme, nil
	}
	return ghosttyDefault, nil
}

// IsAvailable reports whether Ghostty is installed.
func (a *GhosttyAdapter) IsAvailable(ctx context.Context) bool {
	return a.probe.available(ctx)
}

// AppName returns "Ghostty".
func (a *GhosttyAdapter) AppName() string { return "Ghostty" }

// ConfigKey returns "ghostty".
func (a *GhosttyAdapter) ConfigKey() string { return ghosttyKey }

// ConfigPath returns the Ghostty config file path.
func (a *GhosttyAdapter) ConfigPath() string { return a.path }

// DefaultThemes returns Ghostty's built-in theme choices.
func (a *GhosttyAdapter) DefaultThemes() ThemeMapping {
	return ThemeMapping{
		"dark":  "tokyonight",
		"light": "catppuccin-latte",
	}
}

type configLine struct {
	key   string
	value string
}

// parseConfigLines keeps every "key = value" line. Blank lines, comments and
// lines without "=" are not returned.
func parseConfigLines(content string) []configLine {
	var lines []configLine
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		lines = append(lines, configLine{
			key:   strings.TrimSpace(key),
			value: strings.TrimSpace(value),
		})
	}
	return lines
}

func formatConfigLines(lines []configLine) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, fmt.Sprintf("%s = %s", line.key, line.value))
	}
	return strings.Join(out, "\n")
}

// updateThemeInConfig removes existing theme lines and appends the new one.
func updateThemeInConfig(content, theme string) string {
	parsed := parseConfigLines(content)
	lines := parsed[:0]
	for _, line := range parsed {
		if line.key != ghosttyThemeKey {
			lines = append(lines, line)
		}
	}
	lines = append(lines, configLine{key: ghosttyThemeKey, value: theme})
	return formatConfigLines(lines)
}

func extractThemeFromConfig(content string) (string, bool) {
	for _, line := range parseConfigLines(content) {
		if line.key == ghosttyThemeKey {
			return line.value, true
		}
	}
	return "", false
}
