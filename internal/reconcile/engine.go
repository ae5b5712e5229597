// Package reconcile pushes a named theme to every installed application and
// tracks which theme is current.
package reconcile

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/themesync/themesync/internal/adapters"
	"github.com/themesync/themesync/internal/config"
	"github.com/themesync/themesync/internal/logging"
)

// OutcomeStatus is what happened to one adapter during an apply.
type OutcomeStatus string

const (
	// StatusApplied means the theme was written.
	StatusApplied OutcomeStatus = "applied"
	// StatusSkipped means the application is not installed.
	StatusSkipped OutcomeStatus = "skipped"
	// StatusUnmapped means the theme has no value for this application;
	// nothing was attempted.
	StatusUnmapped OutcomeStatus = "unmapped"
	// StatusFailed means SetTheme returned an error.
	StatusFailed OutcomeStatus = "failed"
)

// Outcome is one adapter's result.
type Outcome struct {
	App    string        `json:"app"`
	Key    string        `json:"key"`
	Status OutcomeStatus `json:"status"`
	Value  string        `json:"value,omitempty"`
	Error  string        `json:"error,omitempty"`
	Err    error         `json:"-"`
}

// Result describes a completed apply.
type Result struct {
	RunID         string    `json:"run_id"`
	Theme         string    `json:"theme"`
	PreviousTheme string    `json:"previous_theme,omitempty"`
	Outcomes      []Outcome `json:"outcomes"`
	StateUpdated  bool      `json:"state_updated"`
	Saved         bool      `json:"saved"`
}

// Count returns how many outcomes have the given status.
func (r *Result) Count(status OutcomeStatus) int {
	n := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == status {
			n++
		}
	}
	return n
}

// Store persists the whole Config.
type Store interface {
	Save(cfg *config.Config) error
}

// Recorder receives every saved apply, e.g. to keep a history.
type Recorder interface {
	RecordApply(ctx context.Context, result *Result) error
}

// Engine applies themes across the registry's adapters.
type Engine struct {
	registry *adapters.Registry
	store    Store
	recorder Recorder
	logger   zerolog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRecorder records each successful apply.
func WithRecorder(recorder Recorder) EngineOption {
	return func(e *Engine) {
		e.recorder = recorder
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine. store may be nil, in which case nothing is saved.
func NewEngine(registry *adapters.Registry, store Store, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: registry,
		store:    store,
		logger:   logging.Component("reconcile"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply sets theme name on every available adapter that has a value for it,
// in registry order. One adapter failing never stops the others. Theme state
// is updated and the config saved whatever the per-adapter outcomes were.
//
// An unknown name returns a *ThemeNotFoundError and leaves cfg untouched.
func (e *Engine) Apply(ctx context.Context, cfg *config.Config, name string) (*Result, error) {
	mapping, ok := cfg.Themes[name]
	if !ok {
		return nil, &ThemeNotFoundError{Name: name}
	}

	result := &Result{
		RunID:         uuid.NewString(),
		Theme:         name,
		PreviousTheme: cfg.CurrentTheme(),
		Outcomes:      make([]Outcome, 0, e.registry.Len()),
	}
	logger := e.logger.With().Str("run_id", result.RunID).Str("theme", name).Logger()

	for _, adapter := range e.registry.List() {
		outcome := Outcome{App: adapter.AppName(), Key: adapter.ConfigKey()}
		value, mapped := mapping[adapter.ConfigKey()]

		switch {
		case !adapter.IsAvailable(ctx):
			outcome.Status = StatusSkipped
		case !mapped:
			outcome.Status = StatusUnmapped
		default:
			outcome.Value = value
			if err := adapter.SetTheme(value); err != nil {
				outcome.Status = StatusFailed
				outcome.Err = err
				outcome.Error = err.Error()
				logger.Warn().Err(err).Str("app", outcome.Key).Msg("failed to set theme")
			} else {
				outcome.Status = StatusApplied
			}
		}

		logger.Debug().Str("app", outcome.Key).Str("status", string(outcome.Status)).Msg("adapter done")
		result.Outcomes = append(result.Outcomes, outcome)
	}

	cfg.UpdateThemeState(name)
	result.StateUpdated = true

	if e.store != nil {
		if err := e.store.Save(cfg); err != nil {
			return result, err
		}
		result.Saved = true
	}

	logger.Info().
		Int("applied", result.Count(StatusApplied)).
		Int("failed", result.Count(StatusFailed)).
		Int("skipped", result.Count(StatusSkipped)).
		Msg("theme applied")

	if e.recorder != nil && result.Saved {
		if err := e.recorder.RecordApply(ctx, result); err != nil {
			logger.Warn().Err(err).Msg("failed to record history")
		}
	}

	return result, nil
}
