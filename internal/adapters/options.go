package adapters

import (
	"github.com/rs/zerolog"

	"github.com/themesync/themesync/internal/logging"
)

// Option configures an adapter.
type Option func(*options)

type options struct {
	configPath   string
	installPaths []string
	runner       CommandRunner
	logger       *zerolog.Logger
}

// WithConfigPath overrides the config file the adapter edits.
func WithConfigPath(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithInstallPaths replaces the well-known install paths checked by IsAvailable.
func WithInstallPaths(paths ...string) Option {
	return func(o *options) {
		o.installPaths = paths
	}
}

// WithCommandRunner sets the runner used for version queries.
func WithCommandRunner(runner CommandRunner) Option {
	return func(o *options) {
		o.runner = runner
	}
}

// WithLogger sets the adapter logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

func buildOptions(key, defaultPath string, defaultInstallPaths []string, opts []Option) options {
	o := options{
		configPath:   defaultPath,
		installPaths: defaultInstallPaths,
		runner:       ExecRunner{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		logger := logging.Component("adapters")
		o.logger = &logger
	}
	scoped := o.logger.With().Str("app", key).Logger()
	o.logger = &scoped
	return o
}
