package backend_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rapidsai/rapids-build-backend/internal/adapters/backend"
	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeBackend writes an executable standing in for a wrapped backend and
// returns a Backend delegating to it. The script runs with dir as its
// working directory and records its argv in args.txt.
func fakeBackend(t *testing.T, script string) (ports.Backend, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(t.TempDir(), "fake-backend")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho \"$@\" > args.txt\n"+script), 0o755)) //nolint:gosec // test executable

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	return backend.NewFactory(log).Backend(path, dir), dir
}

func recordedArgs(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "args.txt"))
	require.NoError(t, err)
	return string(data)
}

func TestGetRequires_OneSpecifierPerLine(t *testing.T) {
	b, _ := fakeBackend(t, `echo "setuptools>=61"
echo ""
echo "wheel"
`)

	reqs, err := b.GetRequiresForBuildWheel(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"setuptools>=61", "wheel"}, reqs)
}

func TestGetRequires_EmptyOutput(t *testing.T) {
	b, _ := fakeBackend(t, "exit 0\n")

	reqs, err := b.GetRequiresForBuildSdist(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestRun_SettingsForwardedWithoutProxyKeys(t *testing.T) {
	b, dir := fakeBackend(t, "exit 0\n")

	settings := map[string]string{
		"rapidsai.disable-cuda": "true",
		"skbuild.build-dir":     "build",
		"editable.rebuild":      "true",
	}
	_, err := b.GetRequiresForBuildWheel(context.Background(), settings)
	require.NoError(t, err)

	args := recordedArgs(t, dir)
	assert.Contains(t, args, "get-requires-for-build-wheel")
	// Stable ordering, proxy-owned keys stripped.
	assert.Contains(t, args, "-c editable.rebuild=true -c skbuild.build-dir=build")
	assert.NotContains(t, args, "rapidsai")
}

func TestBuildWheel_ReturnsFinalOutputLine(t *testing.T) {
	b, dir := fakeBackend(t, `echo "compiling" >&2
echo "copying files"
echo "pkg-24.6.0-py3-none-any.whl"
`)

	basename, err := b.BuildWheel(context.Background(), "/tmp/wheels", nil, "/tmp/metadata")
	require.NoError(t, err)
	assert.Equal(t, "pkg-24.6.0-py3-none-any.whl", basename)
	assert.Contains(t, recordedArgs(t, dir), "build-wheel /tmp/wheels /tmp/metadata")
}

func TestBuildSdist_NoArtifactReported(t *testing.T) {
	b, _ := fakeBackend(t, "exit 0\n")

	_, err := b.BuildSdist(context.Background(), "/tmp/dist", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildBackend)
}

func TestPrepareMetadata_HookNotSupported(t *testing.T) {
	b, _ := fakeBackend(t, "exit 4\n")

	_, err := b.PrepareMetadataForBuildWheel(context.Background(), "/tmp/metadata", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHookNotSupported)
}

func TestRun_BackendFailure(t *testing.T) {
	b, _ := fakeBackend(t, `echo "boom" >&2
exit 1
`)

	_, err := b.BuildWheel(context.Background(), "/tmp/wheels", nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildBackend)
	assert.NotErrorIs(t, err, domain.ErrHookNotSupported)
}

func TestRun_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	b := backend.NewFactory(log).Backend(filepath.Join(t.TempDir(), "no-such-backend"), t.TempDir())
	_, err := b.GetRequiresForBuildWheel(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildBackend)
}
