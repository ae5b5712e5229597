package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/themesync/themesync/internal/db"
	"github.com/themesync/themesync/internal/events"
	"github.com/themesync/themesync/internal/logging"
	"github.com/themesync/themesync/internal/models"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyCmd.Flags().Int("limit", 20, "maximum number of entries to show")
	historyCmd.Flags().String("theme", "", "only show applies of this theme")
	historyCmd.Flags().Duration("since", 0, "only show applies newer than this (e.g. 24h)")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently applied themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}
		theme, err := cmd.Flags().GetString("theme")
		if err != nil {
			return err
		}
		since, err := cmd.Flags().GetDuration("since")
		if err != nil {
			return err
		}
		return runHistory(cmd.Context(), cmd.OutOrStdout(), historyFilter{
			Limit: limit,
			Theme: theme,
			Since: since,
		})
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one history entry with every app outcome",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistoryShow(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

// HistoryEntry is one applied theme in `themesync history`.
type HistoryEntry struct {
	ID            string                     `json:"id"`
	Timestamp     time.Time                  `json:"timestamp"`
	RunID         string                     `json:"run_id"`
	Theme         string                     `json:"theme"`
	PreviousTheme string                     `json:"previous_theme,omitempty"`
	Outcomes      []models.AppOutcomePayload `json:"outcomes"`
}

type historyFilter struct {
	Limit int
	Theme string
	Since time.Duration
}

func (f historyFilter) query(now time.Time) db.EventQuery {
	eventType := models.EventTypeThemeApplied
	q := db.EventQuery{Type: &eventType, Limit: f.Limit}
	if theme := strings.TrimSpace(f.Theme); theme != "" {
		q.EntityID = &theme
	}
	if f.Since > 0 {
		since := now.Add(-f.Since)
		q.Since = &since
	}
	return q
}

func newHistoryEntry(event *models.Event) (HistoryEntry, error) {
	payload, err := events.DecodeThemeApplied(event)
	if err != nil {
		return HistoryEntry{}, err
	}
	return HistoryEntry{
		ID:            event.ID,
		Timestamp:     event.Timestamp,
		RunID:         payload.RunID,
		Theme:         payload.Theme,
		PreviousTheme: payload.PreviousTheme,
		Outcomes:      payload.Outcomes,
	}, nil
}

func runHistory(ctx context.Context, out io.Writer, filter historyFilter) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if filter.Limit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}
	if filter.Since < 0 {
		return fmt.Errorf("--since must not be negative")
	}

	database, err := openHistory(ctx)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer database.Close()

	logger := logging.Component("cli")
	found, err := db.NewEventRepository(database).Query(ctx, filter.query(time.Now()))
	if err != nil {
		return err
	}

	entries := make([]HistoryEntry, 0, len(found))
	for _, event := range found {
		entry, err := newHistoryEntry(event)
		if err != nil {
			logger.Warn().Err(err).Str("event", event.ID).Msg("skipping history entry")
			continue
		}
		entries = append(entries, entry)
	}

	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No themes applied yet.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.ID,
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			entry.Theme,
			orDash(entry.PreviousTheme),
			summarizeOutcomes(entry.Outcomes),
		})
	}
	return writeTable(out, []string{"ID", "WHEN", "THEME", "PREVIOUS", "APPS"}, rows)
}

func runHistoryShow(ctx context.Context, out io.Writer, id string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := openHistory(ctx)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer database.Close()

	event, err := db.NewEventRepository(database).Get(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrEventNotFound) {
			return fmt.Errorf("history entry %s: %w", id, err)
		}
		return err
	}
	entry, err := newHistoryEntry(event)
	if err != nil {
		return err
	}

	if IsJSONOutput() || IsJSONLOutput() {
		return WriteOutput(out, entry)
	}

	fmt.Fprintf(out, "Run:      %s\n", entry.RunID)
	fmt.Fprintf(out, "When:     %s\n", entry.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Theme:    %s\n", entry.Theme)
	fmt.Fprintf(out, "Previous: %s\n\n", orDash(entry.PreviousTheme))

	rows := make([][]string, 0, len(entry.Outcomes))
	for _, outcome := range entry.Outcomes {
		detail := outcome.Value
		if outcome.Error != "" {
			detail = outcome.Error
		}
		rows = append(rows, []string{outcome.App, formatEventStatus(outcome.Status), orDash(detail)})
	}
	return writeTable(out, []string{"APP", "STATUS", "DETAIL"}, rows)
}

func summarizeOutcomes(outcomes []models.AppOutcomePayload) string {
	if len(outcomes) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		parts = append(parts, outcome.Key+"="+formatEventStatus(outcome.Status))
	}
	return strings.Join(parts, ", ")
}
