package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/themesync/themesync/internal/reconcile"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current theme of every app",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd.Context(), cmd.OutOrStdout())
	},
}

// StatusReport is the payload of `themesync status`.
type StatusReport struct {
	CurrentTheme  string                `json:"current_theme,omitempty"`
	PreviousTheme string                `json:"previous_theme,omitempty"`
	Apps          []reconcile.AppStatus `json:"apps"`
}

func runStatus(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx, false)
	if err != nil {
		return err
	}
	defer s.Close()

	report := StatusReport{
		CurrentTheme:  s.cfg.CurrentTheme(),
		PreviousTheme: s.cfg.PreviousTheme(),
		Apps:          s.engine.Status(ctx, s.cfg),
	}

	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, report)
	}

	fmt.Fprintln(out, "Theme Status:")
	fmt.Fprintf(out, "  Current:  %s\n", orDash(report.CurrentTheme))
	fmt.Fprintf(out, "  Previous: %s\n\n", orDash(report.PreviousTheme))

	rows := make([][]string, 0, len(report.Apps))
	for _, app := range report.Apps {
		rows = append(rows, []string{app.App, formatAppTheme(app)})
	}
	return writeTable(out, []string{"APP", "THEME"}, rows)
}
