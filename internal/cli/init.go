package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/themesync/themesync/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return err
		}
		return runInit(cmd.OutOrStdout(), force)
	},
}

// InitResult is the payload of `themesync init`.
type InitResult struct {
	Path    string `json:"path"`
	Written bool   `json:"written"`
}

func runInit(out io.Writer, force bool) error {
	path := configPath()
	result := InitResult{Path: path}

	write := !config.Exists(path) || force
	if !write && IsInteractive() && !IsJSONOutput() && !IsJSONLOutput() {
		write = confirm(fmt.Sprintf("%s exists. Overwrite with defaults?", path))
	}

	if write {
		cfg := config.NewWithDefaults(registryFunc())
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		result.Written = true
	}

	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, result)
	}
	if result.Written {
		fmt.Fprintf(out, "Wrote default config to %s\n", path)
	} else {
		fmt.Fprintf(out, "Config already exists at %s (use --force to overwrite)\n", path)
	}
	return nil
}
