package adapters

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// readConfigFile returns the file contents, or "" when the file does not exist.
func readConfigFile(appName, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", themeError(appName, fmt.Sprintf("failed to read %s", path), err)
	}
	return string(data), nil
}

// writeConfigFile replaces the file contents, creating parent directories as needed.
func writeConfigFile(appName, path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return themeError(appName, fmt.Sprintf("failed to create config directory %s", dir), err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return themeError(appName, fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
