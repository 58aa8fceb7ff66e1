// Package shell provides the command runner adapter for external tools.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner using os/exec. It is used for the
// short-lived probes (nvcc, git); the wrapped backend has its own adapter.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// LookPath searches PATH for an executable.
func (r *Runner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command and returns its standard output. Standard error
// is forwarded to the logger line by line; a non-zero exit status is an
// error carrying the exit code.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // tool names come from the adapters, not user input

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	for line := range strings.Lines(stderr.String()) {
		if line = strings.TrimSuffix(line, "\n"); line != "" {
			r.logger.Warn(name + ": " + line)
		}
	}
	if err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", name)
		return stdout.String(), zerr.With(wrapped, "exit_code", exitCode)
	}

	return stdout.String(), nil
}
