// Package events records theme changes in the history log.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/themesync/themesync/internal/models"
	"github.com/themesync/themesync/internal/reconcile"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogThemeApplied records a theme.applied event for a completed apply.
func LogThemeApplied(ctx context.Context, repo Repository, result *reconcile.Result) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if result == nil || result.Theme == "" {
		return fmt.Errorf("apply result with a theme is required")
	}

	payload := models.ThemeAppliedPayload{
		RunID:         result.RunID,
		Theme:         result.Theme,
		PreviousTheme: result.PreviousTheme,
		Outcomes:      make([]models.AppOutcomePayload, 0, len(result.Outcomes)),
	}
	for _, outcome := range result.Outcomes {
		payload.Outcomes = append(payload.Outcomes, models.AppOutcomePayload{
			App:    outcome.App,
			Key:    outcome.Key,
			Status: string(outcome.Status),
			Value:  outcome.Value,
			Error:  outcome.Error,
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal apply payload: %w", err)
	}

	event := &models.Event{
		Type:       models.EventTypeThemeApplied,
		EntityType: models.EntityTypeTheme,
		EntityID:   result.Theme,
		Payload:    data,
		Metadata:   map[string]string{"run_id": result.RunID},
	}

	return repo.Create(ctx, event)
}

// Recorder adapts a Repository to reconcile.Recorder.
type Recorder struct {
	Repo Repository
}

// RecordApply stores result as a theme.applied event.
func (r Recorder) RecordApply(ctx context.Context, result *reconcile.Result) error {
	return LogThemeApplied(ctx, r.Repo, result)
}

// DecodeThemeApplied extracts the payload of a theme.applied event.
func DecodeThemeApplied(event *models.Event) (*models.ThemeAppliedPayload, error) {
	if event.Type != models.EventTypeThemeApplied {
		return nil, fmt.Errorf("event %s is %s, not %s", event.ID, event.Type, models.EventTypeThemeApplied)
	}
	var payload models.ThemeAppliedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode event %s payload: %w", event.ID, err)
	}
	return &payload, nil
}
