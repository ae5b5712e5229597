package adapters

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type fakeRunner struct {
	mu    sync.Mutex
	err   error
	calls []string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
	return r.err
}

var errNotFound = errors.New("executable file not found in $PATH")

// testOptions points an adapter at a temp file and never touches the real system.
func testOptions(t *testing.T, file string, runner CommandRunner) []Option {
	t.Helper()
	return []Option{
		WithConfigPath(filepath.Join(t.TempDir(), "nested", file)),
		WithInstallPaths(),
		WithCommandRunner(runner),
		WithLogger(zerolog.Nop()),
	}
}
