// Package cli implements the themesync command line.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/themesync/themesync/internal/logging"
)

// settings holds runtime options from flags and THEMESYNC_* environment variables.
var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:   "themesync",
	Short: "Switch themes across applications at once",
	Long: `themesync applies one named theme (dark, light, ...) to every installed
application it knows about: VS Code, Ghostty and Helix.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $XDG_CONFIG_HOME/themesync/config.yaml)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.String("history-db", "", "history database (default $XDG_STATE_HOME/themesync/history.db)")
	flags.Bool("no-history", false, "do not record applied themes")
	flags.Bool("json", false, "output JSON")
	flags.Bool("jsonl", false, "output JSON lines")
	flags.Bool("no-color", false, "disable colored output")
	flags.Bool("no-progress", false, "disable progress output")
	flags.Bool("non-interactive", false, "never prompt")

	settings.SetEnvPrefix("THEMESYNC")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	if err := settings.BindPFlags(flags); err != nil {
		panic(err)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by --version.
func SetVersion(version string) {
	rootCmd.Version = version
}

func initRuntime(cmd *cobra.Command, args []string) error {
	return logging.Init(logging.Config{
		Level:  settings.GetString("log-level"),
		Format: logging.Format(settings.GetString("log-format")),
	})
}

// IsJSONOutput reports whether --json is set.
func IsJSONOutput() bool {
	return settings.GetBool("json")
}

// IsJSONLOutput reports whether --jsonl is set.
func IsJSONLOutput() bool {
	return settings.GetBool("jsonl")
}
