package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Inspect the theme catalog",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show available themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runThemesList(cmd.Context(), cmd.OutOrStdout())
	},
}

func runThemesList(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx, false)
	if err != nil {
		return err
	}
	defer s.Close()

	entries := s.engine.Themes(s.cfg)
	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, entries)
	}

	fmt.Fprintln(out, "Available themes:")
	for _, entry := range entries {
		fmt.Fprintf(out, "%s %s:\n", formatCurrentMarker(entry.Current), entry.Name)
		for _, value := range entry.Values {
			fmt.Fprintf(out, "    %s: %s\n", value.App, value.Value)
		}
	}
	return nil
}
