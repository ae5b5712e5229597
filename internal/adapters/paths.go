package adapters

import (
	"os"
	"path/filepath"
)

// configDirFunc resolves the platform config directory. Tests override it.
var configDirFunc = defaultConfigDir

// ConfigDir returns the platform config directory adapters resolve their files under.
func ConfigDir() string {
	return configDirFunc()
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return dir
	}
	return "."
}

func configFile(parts ...string) string {
	return filepath.Join(append([]string{ConfigDir()}, parts...)...)
}
