package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rapidsai/rapids-build-backend/internal/adapters/config"
	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalPyproject = `
[project]
name = "test-project"
dependencies = []

[tool.rapids-build-backend]
build-backend = "setuptools-backend"
`

func writeProject(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(contents), 0o600)
	require.NoError(t, err)
	return dir
}

func newResolver(env map[string]string) *config.Resolver {
	r := config.NewResolver()
	r.LookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return r
}

func TestResolve_Defaults(t *testing.T) {
	dir := writeProject(t, minimalPyproject)

	cfg, err := newResolver(nil).Resolve(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, "test-project", cfg.ProjectName)
	assert.Equal(t, "setuptools-backend", cfg.BuildBackend)
	assert.Equal(t, "dependencies.yaml", cfg.DependenciesFile)
	assert.False(t, cfg.DisableCUDA)
	assert.False(t, cfg.RequireCUDA)
	assert.False(t, cfg.OnlyReleaseDeps)
	assert.Empty(t, cfg.MatrixEntry)
	assert.Empty(t, cfg.Requires)
	assert.Equal(t, []string{"test_project/GIT_COMMIT"}, cfg.CommitFiles)
	assert.Equal(t, domain.StampModeAppend, cfg.CommitFileMode)
}

func TestResolve_StaticTable(t *testing.T) {
	dir := writeProject(t, `
[project]
name = "test-project"

[tool.rapids-build-backend]
build-backend = "scikit-build-backend"
dependencies-file = "deps/dependencies.yaml"
disable-cuda = true
matrix-entry = "cuda=12;arch=amd64"
requires = ["cmake>=3.26", "ninja"]
commit-files = ["pkg/_version.py"]
commit-file-mode = "skip"
`)

	cfg, err := newResolver(nil).Resolve(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, "deps/dependencies.yaml", cfg.DependenciesFile)
	assert.True(t, cfg.DisableCUDA)
	assert.Equal(t, "cuda=12;arch=amd64", cfg.MatrixEntry)
	assert.Equal(t, []string{"cmake>=3.26", "ninja"}, cfg.Requires)
	assert.Equal(t, []string{"pkg/_version.py"}, cfg.CommitFiles)
	assert.Equal(t, domain.StampModeSkip, cfg.CommitFileMode)
}

func TestResolve_EmptyCommitFilesDisablesStamping(t *testing.T) {
	dir := writeProject(t, `
[project]
name = "test-project"

[tool.rapids-build-backend]
build-backend = "setuptools-backend"
commit-files = []
`)

	cfg, err := newResolver(nil).Resolve(dir, nil)
	require.NoError(t, err)
	assert.NotNil(t, cfg.CommitFiles)
	assert.Empty(t, cfg.CommitFiles)
}

func TestResolve_Precedence(t *testing.T) {
	dir := writeProject(t, `
[project]
name = "test-project"

[tool.rapids-build-backend]
build-backend = "setuptools-backend"
matrix-entry = "cuda=11"
`)

	env := map[string]string{"RAPIDS_MATRIX_ENTRY": "cuda=12"}

	// Environment overrides the static table.
	cfg, err := newResolver(env).Resolve(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "cuda=12", cfg.MatrixEntry)

	// A dynamic config setting overrides the environment.
	cfg, err = newResolver(env).Resolve(dir, map[string]string{"rapidsai.matrix-entry": "cuda=13"})
	require.NoError(t, err)
	assert.Equal(t, "cuda=13", cfg.MatrixEntry)
}

func TestResolve_BoolFromEnvironment(t *testing.T) {
	dir := writeProject(t, minimalPyproject)

	cfg, err := newResolver(map[string]string{"RAPIDS_DISABLE_CUDA": "true"}).Resolve(dir, nil)
	require.NoError(t, err)
	assert.True(t, cfg.DisableCUDA)

	// Alternative spellings are rejected.
	_, err = newResolver(map[string]string{"RAPIDS_DISABLE_CUDA": "True"}).Resolve(dir, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestResolve_MissingBuildBackend(t *testing.T) {
	dir := writeProject(t, `
[project]
name = "test-project"

[tool.rapids-build-backend]
dependencies-file = "dependencies.yaml"
`)

	_, err := newResolver(nil).Resolve(dir, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)
	assert.Contains(t, err.Error(), "missing required option")
}

func TestResolve_MissingTable(t *testing.T) {
	dir := writeProject(t, `
[project]
name = "test-project"
`)

	_, err := newResolver(nil).Resolve(dir, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestResolve_MissingPyproject(t *testing.T) {
	_, err := newResolver(nil).Resolve(t.TempDir(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestResolve_UnknownStaticKey(t *testing.T) {
	dir := writeProject(t, `
[project]
name = "test-project"

[tool.rapids-build-backend]
build-backend = "setuptools-backend"
build-backand = "typo"
`)

	_, err := newResolver(nil).Resolve(dir, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestResolve_UnknownDynamicSetting(t *testing.T) {
	dir := writeProject(t, minimalPyproject)

	_, err := newResolver(nil).Resolve(dir, map[string]string{"rapidsai.no-such-option": "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestResolve_StaticOnlyOptionRejectedDynamically(t *testing.T) {
	dir := writeProject(t, minimalPyproject)

	// build-backend is fixed at source-tree authoring time.
	_, err := newResolver(nil).Resolve(dir, map[string]string{"rapidsai.build-backend": "evil-backend"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestResolve_BackendSettingsPassThrough(t *testing.T) {
	dir := writeProject(t, minimalPyproject)

	settings := map[string]string{"skbuild.build-dir": "build"}
	cfg, err := newResolver(nil).Resolve(dir, settings)
	require.NoError(t, err)
	assert.Equal(t, settings, cfg.Settings)
}

func TestResolve_BadTypes(t *testing.T) {
	tests := []struct {
		name  string
		extra string
	}{
		{name: "bool as string", extra: `disable-cuda = "yes"`},
		{name: "list as string", extra: `requires = "cmake"`},
		{name: "string as list", extra: `dependencies-file = ["a.yaml"]`},
		{name: "mixed list", extra: `requires = ["cmake", 3]`},
		{name: "bad stamp mode", extra: `commit-file-mode = "overwrite"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, `
[project]
name = "test-project"

[tool.rapids-build-backend]
build-backend = "setuptools-backend"
`+tt.extra+"\n")

			_, err := newResolver(nil).Resolve(dir, nil)
			require.Error(t, err)
			if !errors.Is(err, domain.ErrConfig) {
				t.Errorf("expected error to wrap ErrConfig, got: %v", err)
			}
		})
	}
}
