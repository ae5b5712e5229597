package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.AddCommand(appsListCmd)
}

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Inspect supported applications",
}

var appsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show configured applications",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAppsList(cmd.Context(), cmd.OutOrStdout())
	},
}

func runAppsList(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx, false)
	if err != nil {
		return err
	}
	defer s.Close()

	apps := s.engine.Apps(ctx, s.cfg)
	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, apps)
	}

	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, []string{
			app.App,
			app.Key,
			formatAvailability(app.Available),
			formatYesNo(app.Enabled),
			app.Path,
		})
	}
	return writeTable(out, []string{"APP", "KEY", "STATUS", "ENABLED", "CONFIG"}, rows)
}
