package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/themesync/themesync/internal/reconcile"
)

func init() {
	rootCmd.AddCommand(toggleCmd)
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle between the current and previously used theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(cmd.Context(), cmd.OutOrStdout())
	},
}

func runToggle(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx, true)
	if err != nil {
		return err
	}
	defer s.Close()

	target, err := reconcile.ToggleTarget(s.cfg)
	if err != nil {
		return err
	}
	if !IsJSONOutput() && !IsJSONLOutput() {
		fmt.Fprintf(out, "Toggling to theme: %s\n", target)
	}

	return applyTheme(ctx, out, s, target)
}
