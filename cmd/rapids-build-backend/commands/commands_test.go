package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rapidsai/rapids-build-backend/cmd/rapids-build-backend/commands"
	"github.com/rapidsai/rapids-build-backend/internal/app"
	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	cli      *commands.CLI
	out      *bytes.Buffer
	config   *mocks.MockConfigResolver
	deps     *mocks.MockDependencyResolver
	detector *mocks.MockDetector
	stamper  *mocks.MockCommitStamper
	backend  *mocks.MockBackend
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		out:      &bytes.Buffer{},
		config:   mocks.NewMockConfigResolver(ctrl),
		deps:     mocks.NewMockDependencyResolver(ctrl),
		detector: mocks.NewMockDetector(ctrl),
		stamper:  mocks.NewMockCommitStamper(ctrl),
		backend:  mocks.NewMockBackend(ctrl),
	}

	factory := mocks.NewMockBackendFactory(ctrl)
	factory.EXPECT().Backend(gomock.Any(), gomock.Any()).Return(f.backend).AnyTimes()

	registry := mocks.NewMockPackageRegistry(ctrl)
	registry.EXPECT().IsSuffixable(gomock.Any()).Return(false).AnyTimes()
	f.deps.EXPECT().Registry(gomock.Any()).Return(registry).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.cli = commands.New(app.New(f.config, f.deps, f.detector, f.stamper, factory, telemetry, log))
	f.cli.SetOutput(f.out)
	return f
}

func (f *fixture) arrange(cfg *domain.ResolvedConfig) {
	f.config.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(cfg, nil)
	f.detector.EXPECT().Detect(gomock.Any(), cfg, gomock.Any()).Return(domain.NotTargeted(), nil)
}

func baseConfig() *domain.ResolvedConfig {
	return &domain.ResolvedConfig{
		ProjectName:      "test-project",
		BuildBackend:     "setuptools-backend",
		DependenciesFile: "dependencies.yaml",
	}
}

func TestGetRequiresForBuildWheel_PrintsOneSpecifierPerLine(t *testing.T) {
	f := newFixture(t)
	f.arrange(baseConfig())
	f.deps.EXPECT().Resolve(gomock.Any(), gomock.Any(), domain.RequirementsBuild).
		Return([]domain.RequirementSpecifier{domain.ParseRequirement("cmake>=3.26")}, nil)
	f.backend.EXPECT().GetRequiresForBuildWheel(gomock.Any(), gomock.Any()).Return([]string{"wheel"}, nil)

	f.cli.SetArgs([]string{"get-requires-for-build-wheel", "-C", t.TempDir()})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Equal(t, "cmake>=3.26\nwheel\n", f.out.String())
}

func TestConfigSettingsReachTheResolver(t *testing.T) {
	f := newFixture(t)

	cfg := baseConfig()
	f.config.EXPECT().Resolve(gomock.Any(), map[string]string{"rapidsai.matrix-entry": "cuda=12", "skbuild.build-dir": "build"}).
		Return(cfg, nil)
	f.detector.EXPECT().Detect(gomock.Any(), cfg, gomock.Any()).Return(domain.NotTargeted(), nil)
	f.deps.EXPECT().Resolve(gomock.Any(), gomock.Any(), domain.RequirementsBuild).Return(nil, nil)
	f.backend.EXPECT().GetRequiresForBuildSdist(gomock.Any(), gomock.Any()).Return(nil, nil)

	f.cli.SetArgs([]string{
		"get-requires-for-build-sdist", "-C", t.TempDir(),
		"-c", "rapidsai.matrix-entry=cuda=12",
		"-c", "skbuild.build-dir=build",
	})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestConfigSettingMissingSeparator(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"get-requires-for-build-wheel", "-c", "not-a-pair"})
	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestBuildWheel_PrintsArtifactBasename(t *testing.T) {
	f := newFixture(t)
	f.arrange(baseConfig())
	f.deps.EXPECT().Resolve(gomock.Any(), gomock.Any(), domain.RequirementsRun).Return(nil, nil)
	f.stamper.EXPECT().Stamp(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.backend.EXPECT().BuildWheel(gomock.Any(), "/tmp/wheels", gomock.Any(), "/tmp/metadata").
		Return("test_project-24.6.0-py3-none-any.whl", nil)

	f.cli.SetArgs([]string{"build-wheel", "-C", t.TempDir(), "/tmp/wheels", "/tmp/metadata"})
	require.NoError(t, f.cli.Execute(context.Background()))

	assert.Equal(t, "test_project-24.6.0-py3-none-any.whl\n", f.out.String())
}

func TestBuildSdist_RequiresOutputDirectory(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"build-sdist"})
	assert.Error(t, f.cli.Execute(context.Background()))
}

func TestVersionCommand(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"version"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Contains(t, f.out.String(), "rapids-build-backend version")
}

func TestRootHelp(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"--help"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Contains(t, f.out.String(), "get-requires-for-build-wheel")
	assert.Contains(t, f.out.String(), "build-sdist")
}
