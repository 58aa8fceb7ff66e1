// Package git stamps the current commit hash into the configured
// marker files before a build.
package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
	"go.trai.ch/zerr"
)

// markerPrefix starts the line that carries the commit hash.
const markerPrefix = "GIT_COMMIT="

var _ ports.CommitStamper = (*Stamper)(nil)

// Stamper implements ports.CommitStamper. A source tree without git, or
// outside a repository, builds fine without a stamp; only filesystem
// failures are fatal.
type Stamper struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewStamper creates a new Stamper.
func NewStamper(runner ports.CommandRunner, logger ports.Logger) *Stamper {
	return &Stamper{runner: runner, logger: logger}
}

// Stamp writes the current commit hash into each configured marker file.
func (s *Stamper) Stamp(ctx context.Context, dir string, cfg *domain.ResolvedConfig) error {
	if len(cfg.CommitFiles) == 0 {
		return nil
	}

	commit, ok := s.commit(ctx, dir)
	if !ok {
		return nil
	}

	for _, rel := range cfg.CommitFiles {
		if err := stampFile(filepath.Join(dir, rel), commit, cfg.CommitFileMode); err != nil {
			return err
		}
	}
	return nil
}

func (s *Stamper) commit(ctx context.Context, dir string) (string, bool) {
	if _, err := s.runner.LookPath("git"); err != nil {
		s.logger.Info("git not found, skipping commit stamping")
		return "", false
	}

	out, err := s.runner.Run(ctx, "git", "-C", dir, "rev-parse", "HEAD")
	if err != nil {
		s.logger.Warn("could not determine the current commit, skipping commit stamping")
		return "", false
	}
	return strings.TrimSpace(out), true
}

func stampFile(path string, commit string, mode domain.StampMode) error {
	current, err := os.ReadFile(path) //nolint:gosec // path comes from the project's own configuration
	switch {
	case errors.Is(err, os.ErrNotExist):
		if mode == domain.StampModeSkip {
			return nil
		}
		if err := os.WriteFile(path, []byte(markerPrefix+commit+"\n"), 0o644); err != nil { //nolint:gosec // marker files are project sources
			return zerr.With(zerr.Wrap(err, "failed to create commit file"), "path", path)
		}
		return nil
	case err != nil:
		return zerr.With(zerr.Wrap(err, "failed to read commit file"), "path", path)
	}

	next, replaced := replaceMarker(current, commit)
	if !replaced {
		if mode == domain.StampModeSkip {
			return nil
		}
		next = appendMarker(current, commit)
	}

	// Unchanged content is not rewritten so build systems watching
	// mtimes do not see spurious changes.
	if xxhash.Sum64(next) == xxhash.Sum64(current) {
		return nil
	}

	if err := os.WriteFile(path, next, 0o644); err != nil { //nolint:gosec // marker files are project sources
		return zerr.With(zerr.Wrap(err, "failed to write commit file"), "path", path)
	}
	return nil
}

// replaceMarker rewrites every marker line in place. All other bytes,
// including each line's own terminator, are preserved.
func replaceMarker(content []byte, commit string) ([]byte, bool) {
	var out bytes.Buffer
	replaced := false

	rest := content
	for len(rest) > 0 {
		line := rest
		terminator := []byte(nil)
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i]
			terminator = rest[i : i+1]
			rest = rest[i+1:]
		} else {
			rest = nil
		}

		body := line
		if bytes.HasSuffix(body, []byte("\r")) {
			body = body[:len(body)-1]
			terminator = append([]byte("\r"), terminator...)
		}

		if bytes.HasPrefix(body, []byte(markerPrefix)) {
			out.WriteString(markerPrefix + commit)
			replaced = true
		} else {
			out.Write(body)
		}
		out.Write(terminator)
	}

	return out.Bytes(), replaced
}

func appendMarker(content []byte, commit string) []byte {
	var out bytes.Buffer
	out.Write(content)
	if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
		out.WriteByte('\n')
	}
	out.WriteString(markerPrefix + commit + "\n")
	return out.Bytes()
}
