// Package config resolves the per-invocation build configuration from
// pyproject.toml, environment variables and dynamic config settings.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// tableName is the pyproject.toml table holding the static options.
	tableName = "rapids-build-backend"
	// envPrefix mangles an option name into its environment variable:
	// upper-case, hyphens to underscores, e.g. RAPIDS_DISABLE_CUDA.
	envPrefix = "RAPIDS_"
	// settingPrefix namespaces the proxy's dynamic config settings so
	// they can be told apart from settings meant for the wrapped backend.
	settingPrefix = "rapidsai."
)

// options declares every recognized configuration key and whether it may be
// supplied dynamically (config setting or environment variable). Everything
// else is fixed at source-tree authoring time.
var options = map[string]bool{
	"build-backend":     false,
	"commit-files":      false,
	"commit-file-mode":  false,
	"requires":          false,
	"dependencies-file": true,
	"disable-cuda":      true,
	"require-cuda":      true,
	"matrix-entry":      true,
	"only-release-deps": true,
}

var _ ports.ConfigResolver = (*Resolver)(nil)

// Resolver implements ports.ConfigResolver. It is a pure function over its
// three sources; nothing is cached between invocations.
type Resolver struct {
	// LookupEnv defaults to os.LookupEnv; tests may replace it.
	LookupEnv func(key string) (string, bool)
}

// NewResolver creates a new Resolver reading the process environment.
func NewResolver() *Resolver {
	return &Resolver{LookupEnv: os.LookupEnv}
}

// Resolve reads <dir>/pyproject.toml and merges the static table with the
// environment and the dynamic settings. Precedence, highest to lowest:
// dynamic setting > environment variable > static table > built-in default.
func (r *Resolver) Resolve(dir string, settings map[string]string) (*domain.ResolvedConfig, error) {
	doc, err := readPyproject(filepath.Join(dir, "pyproject.toml"))
	if err != nil {
		return nil, err
	}

	table, ok := doc.Tool[tableName]
	if !ok {
		return nil, zerr.Wrap(domain.ErrConfig, "no tool."+tableName+" table in pyproject.toml")
	}
	for key := range table {
		if _, known := options[key]; !known {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfig, "unknown option in tool."+tableName), "option", key)
		}
	}
	for key := range settings {
		name, ok := strings.CutPrefix(key, settingPrefix)
		if !ok {
			continue // setting addressed to the wrapped backend
		}
		if overridable, known := options[name]; !known || !overridable {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfig, "unknown or static-only config setting"), "option", key)
		}
	}

	if doc.Project.Name == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfig, "missing required option"), "option", "project.name")
	}

	lookup := &lookup{resolver: r, table: table, settings: settings}

	cfg := &domain.ResolvedConfig{
		ProjectName: doc.Project.Name,
		Settings:    settings,
	}

	if cfg.BuildBackend, err = lookup.str("build-backend", ""); err != nil {
		return nil, err
	}
	if cfg.BuildBackend == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfig, "missing required option"), "option", "build-backend")
	}
	if cfg.DependenciesFile, err = lookup.str("dependencies-file", "dependencies.yaml"); err != nil {
		return nil, err
	}
	if cfg.MatrixEntry, err = lookup.str("matrix-entry", ""); err != nil {
		return nil, err
	}
	if cfg.DisableCUDA, err = lookup.boolean("disable-cuda", false); err != nil {
		return nil, err
	}
	if cfg.RequireCUDA, err = lookup.boolean("require-cuda", false); err != nil {
		return nil, err
	}
	if cfg.OnlyReleaseDeps, err = lookup.boolean("only-release-deps", false); err != nil {
		return nil, err
	}
	if cfg.Requires, err = lookup.strList("requires", nil); err != nil {
		return nil, err
	}
	if cfg.CommitFiles, err = lookup.strList("commit-files", defaultCommitFiles(doc.Project.Name)); err != nil {
		return nil, err
	}

	mode, err := lookup.str("commit-file-mode", string(domain.StampModeAppend))
	if err != nil {
		return nil, err
	}
	switch domain.StampMode(mode) {
	case domain.StampModeAppend, domain.StampModeSkip:
		cfg.CommitFileMode = domain.StampMode(mode)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrConfig, "commit-file-mode must be 'append' or 'skip'"), "option", "commit-file-mode")
	}

	return cfg, nil
}

// defaultCommitFiles derives the commit-marker default from the project
// name, mirroring the package directory naming convention.
func defaultCommitFiles(project string) []string {
	return []string{strings.ReplaceAll(project, "-", "_") + "/GIT_COMMIT"}
}

type pyprojectDoc struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Tool map[string]map[string]any `toml:"tool"`
}

func readPyproject(path string) (*pyprojectDoc, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project's own pyproject.toml
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfig, "pyproject.toml not found"), "path", path)
		}
		return nil, zerr.Wrap(err, "failed to read pyproject.toml")
	}

	var doc pyprojectDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrConfig, err), "failed to parse pyproject.toml")
	}
	return &doc, nil
}

// lookup resolves one option across the three sources.
type lookup struct {
	resolver *Resolver
	table    map[string]any
	settings map[string]string
}

// raw returns the highest-precedence dynamic value for an option, if any.
// Only overridable options consult the dynamic sources.
func (l *lookup) raw(name string) (string, bool) {
	if !options[name] {
		return "", false
	}
	if v, ok := l.settings[settingPrefix+name]; ok {
		return v, true
	}
	if l.resolver.LookupEnv != nil {
		envName := envPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		if v, ok := l.resolver.LookupEnv(envName); ok {
			return v, true
		}
	}
	return "", false
}

func (l *lookup) str(name, fallback string) (string, error) {
	if v, ok := l.raw(name); ok {
		return v, nil
	}
	v, ok := l.table[name]
	if !ok {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrConfig, "option must be a string"), "option", name)
	}
	return s, nil
}

func (l *lookup) boolean(name string, fallback bool) (bool, error) {
	if v, ok := l.raw(name); ok {
		// Alternative spellings are rejected on purpose so that a typo in
		// CI does not silently flip a build flavor.
		switch v {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return false, zerr.With(zerr.Wrap(domain.ErrConfig, "option must be 'true' or 'false'"), "option", name)
		}
	}
	v, ok := l.table[name]
	if !ok {
		return fallback, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, zerr.With(zerr.Wrap(domain.ErrConfig, "option must be a boolean"), "option", name)
	}
	return b, nil
}

func (l *lookup) strList(name string, fallback []string) ([]string, error) {
	v, ok := l.table[name]
	if !ok {
		return fallback, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfig, "option must be a list of strings"), "option", name)
	}
	list := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfig, "option must be a list of strings"), "option", name)
		}
		list = append(list, s)
	}
	return list, nil
}
