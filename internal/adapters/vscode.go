package adapters

import (
	"context"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const (
	vscodeKey = "vscode"
	// colorThemePath is the gjson/sjson path of "workbench.colorTheme"; the
	// dot is part of the key, not a nesting separator.
	colorThemePath = `workbench\.colorTheme`
	vscodeDefault  = "Default Dark+"
)

var prettyOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  "}

// VSCodeAdapter edits VS Code's user settings.json.
type VSCodeAdapter struct {
	path   string
	probe  probe
	logger zerolog.Logger
}

// NewVSCodeAdapter creates an adapter for <config_dir>/Code/User/settings.json.
func NewVSCodeAdapter(opts ...Option) *VSCodeAdapter {
	o := buildOptions(vscodeKey, configFile("Code", "User", "settings.json"), vscodeInstallPaths(), opts)
	return &VSCodeAdapter{
		path: o.configPath,
		probe: probe{
			paths:   o.installPaths,
			command: "code",
			args:    []string{"--version"},
			runner:  o.runner,
			logger:  *o.logger,
		},
		logger: *o.logger,
	}
}

func vscodeInstallPaths() []string {
	if runtime.GOOS == "darwin" {
		return []string{
			"/Applications/Visual Studio Code.app/Contents/Resources/app/bin/code",
			"/usr/local/bin/code",
			"/opt/homebrew/bin/code",
		}
	}
	return []string{
		"/usr/local/bin/code",
		"/usr/bin/code",
		"/snap/bin/code",
	}
}

// readSettings returns the settings document. Absent or blank files read as "{}".
func (a *VSCodeAdapter) readSettings() (string, error) {
	content, err := readConfigFile(a.AppName(), a.path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "{}", nil
	}
	if !gjson.Valid(content) {
		return "", themeError(a.AppName(), "failed to parse settings.json: invalid JSON", nil)
	}
	if !gjson.Parse(content).IsObject() {
		return "", themeError(a.AppName(), "settings.json is not a JSON object", nil)
	}
	return content, nil
}

// SetTheme sets workbench.colorTheme, leaving all other settings in place.
func (a *VSCodeAdapter) SetTheme(theme string) error {
	settings, err := a.readSettings()
	if err != nil {
		return err
	}
	updated, err := sjson.Set(settings, colorThemePath, theme)
	if err != nil {
		return themeError(a.AppName(), "failed to update settings", err)
	}
	a.logger.Debug().Str("path", a.path).Str("theme", theme).Msg("writing theme")
	return writeConfigFile(a.AppName(), a.path, string(pretty.PrettyOptions([]byte(updated), prettyOptions)))
}

// GetTheme returns workbench.colorTheme, or "Default Dark+" when unset or not a string.
func (a *VSCodeAdapter) GetTheme() (string, error) {
	settings, err := a.readSettings()
	if err != nil {
		return "", err
	}
	result := gjson.Get(settings, colorThemePath)
	if result.Type == gjson.String {
		return result.Str, nil
	}
	return vscodeDefault, nil
}

// IsAvailable reports whether VS Code is installed.
func (a *VSCodeAdapter) IsAvailable(ctx context.Context) bool {
	return a.probe.available(ctx)
}

// AppName returns "VS Code".
func (a *VSCodeAdapter) AppName() string { return "VS Code" }

// ConfigKey returns "vscode".
func (a *VSCodeAdapter) ConfigKey() string { return vscodeKey }

// ConfigPath returns the settings.json path.
func (a *VSCodeAdapter) ConfigPath() string { return a.path }

// DefaultThemes returns VS Code's built-in theme choices.
func (a *VSCodeAdapter) DefaultThemes() ThemeMapping {
	return ThemeMapping{
		"dark":  "Dracula",
		"light": "GitHub Light",
	}
}
