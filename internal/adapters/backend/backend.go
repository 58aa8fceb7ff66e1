// Package backend delegates hook invocations to the wrapped build
// backend executable.
package backend

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"slices"
	"strings"

	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// settingPrefix marks config settings owned by the proxy. They are
	// stripped before delegation; the wrapped backend must never see them.
	settingPrefix = "rapidsai."

	// exitHookNotSupported is the documented exit status for a hook the
	// backend does not implement.
	exitHookNotSupported = 4
)

var _ ports.Backend = (*ExecBackend)(nil)
var _ ports.BackendFactory = (*Factory)(nil)

// Factory implements ports.BackendFactory.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// Backend returns a Backend delegating to the named executable.
func (f *Factory) Backend(name, dir string) ports.Backend {
	return &ExecBackend{name: name, dir: dir, logger: f.logger}
}

// ExecBackend implements ports.Backend by running the backend executable
// once per hook. The hook name and positional arguments form the argv;
// config settings are passed as repeated -c key=value flags. stdout
// carries the result, stderr is the backend's log channel.
type ExecBackend struct {
	name   string
	dir    string
	logger ports.Logger
}

func (b *ExecBackend) GetRequiresForBuildWheel(ctx context.Context, settings map[string]string) ([]string, error) {
	return b.requires(ctx, domain.HookGetRequiresForBuildWheel, settings)
}

func (b *ExecBackend) GetRequiresForBuildSdist(ctx context.Context, settings map[string]string) ([]string, error) {
	return b.requires(ctx, domain.HookGetRequiresForBuildSdist, settings)
}

func (b *ExecBackend) GetRequiresForBuildEditable(ctx context.Context, settings map[string]string) ([]string, error) {
	return b.requires(ctx, domain.HookGetRequiresForBuildEditable, settings)
}

func (b *ExecBackend) PrepareMetadataForBuildWheel(ctx context.Context, metadataDir string, settings map[string]string) (string, error) {
	return b.artifact(ctx, domain.HookPrepareMetadataForBuildWheel, []string{metadataDir}, settings)
}

func (b *ExecBackend) PrepareMetadataForBuildEditable(ctx context.Context, metadataDir string, settings map[string]string) (string, error) {
	return b.artifact(ctx, domain.HookPrepareMetadataForBuildEditable, []string{metadataDir}, settings)
}

func (b *ExecBackend) BuildWheel(ctx context.Context, wheelDir string, settings map[string]string, metadataDir string) (string, error) {
	args := []string{wheelDir}
	if metadataDir != "" {
		args = append(args, metadataDir)
	}
	return b.artifact(ctx, domain.HookBuildWheel, args, settings)
}

func (b *ExecBackend) BuildSdist(ctx context.Context, sdistDir string, settings map[string]string) (string, error) {
	return b.artifact(ctx, domain.HookBuildSdist, []string{sdistDir}, settings)
}

func (b *ExecBackend) BuildEditable(ctx context.Context, wheelDir string, settings map[string]string, metadataDir string) (string, error) {
	args := []string{wheelDir}
	if metadataDir != "" {
		args = append(args, metadataDir)
	}
	return b.artifact(ctx, domain.HookBuildEditable, args, settings)
}

// requires runs a get-requires hook and returns one specifier per
// non-empty output line.
func (b *ExecBackend) requires(ctx context.Context, hook domain.Hook, settings map[string]string) ([]string, error) {
	out, err := b.run(ctx, hook, nil, settings)
	if err != nil {
		return nil, err
	}

	var reqs []string
	for line := range strings.Lines(out) {
		if line = strings.TrimSpace(line); line != "" {
			reqs = append(reqs, line)
		}
	}
	return reqs, nil
}

// artifact runs a hook that produces a file or directory and returns its
// basename, reported by the backend as the final output line.
func (b *ExecBackend) artifact(ctx context.Context, hook domain.Hook, args []string, settings map[string]string) (string, error) {
	out, err := b.run(ctx, hook, args, settings)
	if err != nil {
		return "", err
	}

	basename := ""
	for line := range strings.Lines(out) {
		if line = strings.TrimSpace(line); line != "" {
			basename = line
		}
	}
	if basename == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrBuildBackend, "backend reported no artifact"), "hook", hook.String())
	}
	return basename, nil
}

func (b *ExecBackend) run(ctx context.Context, hook domain.Hook, args []string, settings map[string]string) (string, error) {
	argv := append([]string{hook.String()}, args...)
	for _, kv := range settingArgs(settings) {
		argv = append(argv, "-c", kv)
	}

	cmd := exec.CommandContext(ctx, b.name, argv...) //nolint:gosec // the executable is the configured build backend
	cmd.Dir = b.dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", zerr.Wrap(err, "failed to open backend stdout")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", zerr.Wrap(err, "failed to open backend stderr")
	}

	if err := cmd.Start(); err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrBuildBackend, err), "failed to start backend"), "backend", b.name)
	}

	var out bytes.Buffer
	eg := &errgroup.Group{}
	eg.Go(func() error {
		_, err := out.ReadFrom(stdout)
		return err
	})
	eg.Go(func() error {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				b.logger.Warn(b.name + ": " + line)
			}
		}
		return scanner.Err()
	})

	pipeErr := eg.Wait()
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == exitHookNotSupported {
			return "", zerr.With(zerr.Wrap(domain.ErrHookNotSupported, "backend does not implement this hook"), "hook", hook.String())
		}
		wrapped := zerr.Wrap(errors.Join(domain.ErrBuildBackend, err), "backend hook failed")
		return "", zerr.With(zerr.With(wrapped, "backend", b.name), "hook", hook.String())
	}
	if pipeErr != nil {
		return "", zerr.Wrap(pipeErr, "failed to read backend output")
	}

	return out.String(), nil
}

// settingArgs renders the forwarded config settings in a stable order
// with the proxy-owned keys removed.
func settingArgs(settings map[string]string) []string {
	kvs := make([]string, 0, len(settings))
	for key, value := range settings {
		if strings.HasPrefix(key, settingPrefix) {
			continue
		}
		kvs = append(kvs, key+"="+value)
	}
	slices.Sort(kvs)
	return kvs
}
