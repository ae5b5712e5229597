package cli

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/themesync/themesync/internal/adapters"
	"github.com/themesync/themesync/internal/config"
	"github.com/themesync/themesync/internal/db"
	"github.com/themesync/themesync/internal/events"
	"github.com/themesync/themesync/internal/logging"
	"github.com/themesync/themesync/internal/reconcile"
)

// registryFunc builds the adapter registry. Tests override it.
var registryFunc = func() *adapters.Registry {
	return adapters.DefaultRegistry()
}

// storeFunc builds the store the engine saves the config to. Tests override it.
var storeFunc = func(path string) reconcile.Store {
	return config.FileStore{Path: path}
}

// session is everything a command needs for one invocation.
type session struct {
	path     string
	cfg      *config.Config
	engine   *reconcile.Engine
	database *db.DB
	logger   zerolog.Logger
}

func configPath() string {
	if path := strings.TrimSpace(settings.GetString("config")); path != "" {
		return path
	}
	return config.DefaultPath()
}

func historyPath() string {
	if path := strings.TrimSpace(settings.GetString("history-db")); path != "" {
		return path
	}
	return db.DefaultPath()
}

// openSession loads the config and builds the engine. withHistory opens the
// history database; a database that cannot be opened only disables history.
func openSession(ctx context.Context, withHistory bool) (*session, error) {
	logger := logging.Component("cli")
	registry := registryFunc()
	path := configPath()

	cfg, err := config.Load(path, registry)
	if err != nil {
		return nil, err
	}

	s := &session{path: path, cfg: cfg, logger: logger}

	var opts []reconcile.EngineOption
	if withHistory && !settings.GetBool("no-history") {
		database, err := openHistory(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("history disabled")
		} else {
			s.database = database
			opts = append(opts, reconcile.WithRecorder(events.Recorder{Repo: db.NewEventRepository(database)}))
		}
	}

	s.engine = reconcile.NewEngine(registry, storeFunc(path), opts...)
	return s, nil
}

func openHistory(ctx context.Context) (*db.DB, error) {
	database, err := db.Open(historyPath())
	if err != nil {
		return nil, err
	}
	applied, err := database.MigrateUp(ctx)
	if err != nil {
		database.Close()
		return nil, err
	}
	logger := logging.Component("cli")
	logger.Debug().Str("path", database.Path()).Int("migrations", applied).Msg("history database ready")
	return database, nil
}

func (s *session) Close() {
	if s.database != nil {
		if err := s.database.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("close history database")
		}
	}
}
