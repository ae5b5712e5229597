// Package models defines the records stored in the themesync history database.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// EventType categorizes events in the system.
type EventType string

// EventTypeThemeApplied records one completed apply.
const EventTypeThemeApplied EventType = "theme.applied"

// EntityType identifies the type of entity an event relates to.
type EntityType string

// EntityTypeTheme marks events keyed by theme name.
const EntityTypeTheme EntityType = "theme"

// Event represents an append-only log entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID is the ID of the related entity (the theme name for theme events).
	EntityID string `json:"entity_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Metadata contains additional context.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(string(e.Type)) == "" {
		validation.AddMessage("type", "event type is required")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		validation.AddMessage("entity_type", "entity_type is required")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		validation.AddMessage("entity_id", "entity_id is required")
	}
	return validation.Err()
}

// AppOutcomePayload is one adapter's result within a theme.applied event.
type AppOutcomePayload struct {
	App    string `json:"app"`
	Key    string `json:"key"`
	Status string `json:"status"`
	Value  string `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ThemeAppliedPayload is the payload for theme.applied events.
type ThemeAppliedPayload struct {
	RunID         string              `json:"run_id"`
	Theme         string              `json:"theme"`
	PreviousTheme string              `json:"previous_theme,omitempty"`
	Outcomes      []AppOutcomePayload `json:"outcomes"`
}
