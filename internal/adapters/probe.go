package adapters

import (
	"context"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// CommandRunner runs an executable and reports whether it exited successfully.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands on the local machine. Output is discarded.
type ExecRunner struct{}

// Run executes name with args and waits for it to exit.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// probe decides whether an application is installed: well-known install
// paths first, then the app's own version query.
type probe struct {
	paths   []string
	command string
	args    []string
	runner  CommandRunner
	logger  zerolog.Logger
}

func (p probe) available(ctx context.Context) bool {
	for _, path := range p.paths {
		if _, err := os.Stat(path); err == nil {
			p.logger.Debug().Str("path", path).Msg("found install path")
			return true
		}
	}

	if p.command == "" || p.runner == nil {
		return false
	}

	if err := p.runner.Run(ctx, p.command, p.args...); err != nil {
		p.logger.Debug().Err(err).Str("command", p.command).Msg("version query failed")
		return false
	}
	return true
}
