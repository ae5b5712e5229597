package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/themesync/themesync/internal/reconcile"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <theme>",
	Short: "Switch all configured apps to the given theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSet(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

func runSet(ctx context.Context, out io.Writer, theme string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx, true)
	if err != nil {
		return err
	}
	defer s.Close()

	return applyTheme(ctx, out, s, theme)
}

// applyTheme applies theme and prints the outcomes. Outcomes are printed even
// when saving the config fails, since the apps were already rewritten.
func applyTheme(ctx context.Context, out io.Writer, s *session, theme string) error {
	progress := startProgress(fmt.Sprintf("Applying %s", theme))
	result, err := s.engine.Apply(ctx, s.cfg, theme)
	if err != nil {
		progress.Fail(err)
		if result != nil {
			if werr := writeResult(out, result); werr != nil {
				return errors.Join(err, werr)
			}
		}
		return err
	}
	progress.Done()

	return writeResult(out, result)
}

func writeResult(out io.Writer, result *reconcile.Result) error {
	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, result)
	}
	for _, outcome := range result.Outcomes {
		if line := formatOutcome(outcome); line != "" {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}
