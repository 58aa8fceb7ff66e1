// Package app implements the hook proxy pipeline.
package app

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
	"github.com/rapidsai/rapids-build-backend/internal/engine/rewrite"
)

// App exposes one method per hook of the standardized build-backend
// contract. Every call runs the same pipeline from scratch: resolve
// configuration, establish the accelerator context, compute requirements,
// then the hook-specific tail. Nothing is cached between calls because
// front-ends may invoke each hook in a fresh process.
type App struct {
	config    ports.ConfigResolver
	deps      ports.DependencyResolver
	detector  ports.Detector
	stamper   ports.CommitStamper
	backends  ports.BackendFactory
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	config ports.ConfigResolver,
	deps ports.DependencyResolver,
	detector ports.Detector,
	stamper ports.CommitStamper,
	backends ports.BackendFactory,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		config:    config,
		deps:      deps,
		detector:  detector,
		stamper:   stamper,
		backends:  backends,
		telemetry: telemetry,
		logger:    logger,
	}
}

// invocation carries the state of one hook call through the pipeline.
type invocation struct {
	dir      string
	cfg      *domain.ResolvedConfig
	matrix   domain.BuildMatrix
	accel    domain.AcceleratorContext
	depsPath string
	rewriter *rewrite.Rewriter
	backend  ports.Backend
}

func (a *App) GetRequiresForBuildWheel(ctx context.Context, dir string, settings map[string]string) ([]string, error) {
	inv, err := a.establish(ctx, dir, settings)
	if err != nil {
		return nil, err
	}
	return a.computeRequires(ctx, inv, inv.backend.GetRequiresForBuildWheel)
}

func (a *App) GetRequiresForBuildSdist(ctx context.Context, dir string, settings map[string]string) ([]string, error) {
	inv, err := a.establish(ctx, dir, settings)
	if err != nil {
		return nil, err
	}
	return a.computeRequires(ctx, inv, inv.backend.GetRequiresForBuildSdist)
}

func (a *App) GetRequiresForBuildEditable(ctx context.Context, dir string, settings map[string]string) ([]string, error) {
	inv, err := a.establish(ctx, dir, settings)
	if err != nil {
		return nil, err
	}
	return a.computeRequires(ctx, inv, inv.backend.GetRequiresForBuildEditable)
}

func (a *App) PrepareMetadataForBuildWheel(ctx context.Context, dir, metadataDir string, settings map[string]string) (string, error) {
	inv, err := a.establish(ctx, dir, settings)
	if err != nil {
		return "", err
	}
	return a.prepareMetadata(ctx, inv, metadataDir, inv.backend.PrepareMetadataForBuildWheel)
}

func (a *App) PrepareMetadataForBuildEditable(ctx context.Context, dir, metadataDir string, settings map[string]string) (string, error) {
	inv, err := a.establish(ctx, dir, settings)
	if err != nil {
		return "", err
	}
	return a.prepareMetadata(ctx, inv, metadataDir, inv.backend.PrepareMetadataForBuildEditable)
}

func (a *App) BuildWheel(ctx context.Context, dir, wheelDir string, settings map[string]string, metadataDir string) (string, error) {
	return a.buildArtifact(ctx, dir, settings, func(ctx context.Context, inv *invocation) (string, error) {
		return inv.backend.BuildWheel(ctx, wheelDir, inv.cfg.Settings, metadataDir)
	})
}

func (a *App) BuildSdist(ctx context.Context, dir, sdistDir string, settings map[string]string) (string, error) {
	return a.buildArtifact(ctx, dir, settings, func(ctx context.Context, inv *invocation) (string, error) {
		return inv.backend.BuildSdist(ctx, sdistDir, inv.cfg.Settings)
	})
}

func (a *App) BuildEditable(ctx context.Context, dir, wheelDir string, settings map[string]string, metadataDir string) (string, error) {
	return a.buildArtifact(ctx, dir, settings, func(ctx context.Context, inv *invocation) (string, error) {
		return inv.backend.BuildEditable(ctx, wheelDir, inv.cfg.Settings, metadataDir)
	})
}

// establish runs the shared front of the pipeline: configuration, build
// matrix, accelerator context.
func (a *App) establish(ctx context.Context, dir string, settings map[string]string) (*invocation, error) {
	_, vertex := a.telemetry.Record(ctx, "resolve-config")
	cfg, err := a.config.Resolve(dir, settings)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}

	matrix, err := domain.ParseMatrix(cfg.MatrixEntry)
	if err != nil {
		return nil, err
	}

	_, vertex = a.telemetry.Record(ctx, "detect-accelerator")
	accel, err := a.detector.Detect(ctx, cfg, matrix)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}

	depsPath := filepath.Join(dir, cfg.DependenciesFile)
	return &invocation{
		dir:      dir,
		cfg:      cfg,
		matrix:   matrix,
		accel:    accel,
		depsPath: depsPath,
		rewriter: rewrite.New(a.deps.Registry(depsPath)),
		backend:  a.backends.Backend(cfg.BuildBackend, dir),
	}, nil
}

// computeRequires merges the configured extra requirements, the rewritten
// build-category requirements and the wrapped backend's own answer,
// de-duplicated by exact string with first-seen order preserved.
func (a *App) computeRequires(ctx context.Context, inv *invocation, delegate func(context.Context, map[string]string) ([]string, error)) ([]string, error) {
	_, vertex := a.telemetry.Record(ctx, "compute-requirements")
	reqs, err := a.requires(ctx, inv, delegate)
	vertex.Complete(err)
	return reqs, err
}

func (a *App) requires(ctx context.Context, inv *invocation, delegate func(context.Context, map[string]string) ([]string, error)) ([]string, error) {
	merged := []string{}
	seen := map[string]struct{}{}
	add := func(spec string) {
		if _, ok := seen[spec]; !ok {
			seen[spec] = struct{}{}
			merged = append(merged, spec)
		}
	}

	extras := make([]domain.RequirementSpecifier, 0, len(inv.cfg.Requires))
	for _, raw := range inv.cfg.Requires {
		extras = append(extras, domain.ParseRequirement(raw))
	}
	for _, spec := range inv.rewriter.Specifiers(extras, inv.accel, inv.cfg.OnlyReleaseDeps) {
		add(spec.String())
	}

	specs, err := a.deps.Resolve(inv.depsPath, inv.matrix, domain.RequirementsBuild)
	if err != nil {
		return nil, err
	}
	for _, spec := range inv.rewriter.Specifiers(specs, inv.accel, inv.cfg.OnlyReleaseDeps) {
		add(spec.String())
	}

	backendReqs, err := delegate(ctx, inv.cfg.Settings)
	if err != nil {
		if !errors.Is(err, domain.ErrHookNotSupported) {
			return nil, err
		}
		// Optional hook; its documented default is an empty list.
		backendReqs = nil
	}
	for _, spec := range backendReqs {
		add(spec)
	}

	return merged, nil
}

// prepareMetadata delegates and then rewrites the produced core metadata
// to carry the suffixed package name and the rewritten run requirements.
func (a *App) prepareMetadata(ctx context.Context, inv *invocation, metadataDir string, delegate func(context.Context, string, map[string]string) (string, error)) (string, error) {
	_, vertex := a.telemetry.Record(ctx, "compute-requirements")
	runReqs, err := a.runRequires(inv)
	vertex.Complete(err)
	if err != nil {
		return "", err
	}

	_, vertex = a.telemetry.Record(ctx, "delegate")
	basename, err := delegate(ctx, metadataDir, inv.cfg.Settings)
	vertex.Complete(err)
	if err != nil {
		return "", err
	}

	_, vertex = a.telemetry.Record(ctx, "rewrite-metadata")
	renamed, err := rewriteDistInfo(metadataDir, basename, inv.rewriter.Name(inv.cfg.ProjectName, inv.accel), runReqs)
	vertex.Complete(err)
	return renamed, err
}

// runRequires resolves and rewrites the run-category requirements that
// end up as the distribution's install requirements.
func (a *App) runRequires(inv *invocation) ([]string, error) {
	specs, err := a.deps.Resolve(inv.depsPath, inv.matrix, domain.RequirementsRun)
	if err != nil {
		return nil, err
	}

	reqs := make([]string, 0, len(specs))
	for _, spec := range inv.rewriter.Specifiers(specs, inv.accel, inv.cfg.OnlyReleaseDeps) {
		reqs = append(reqs, spec.String())
	}
	return reqs, nil
}

// buildArtifact runs the full pipeline, stamps the commit markers and
// delegates verbatim.
func (a *App) buildArtifact(ctx context.Context, dir string, settings map[string]string, delegate func(context.Context, *invocation) (string, error)) (string, error) {
	inv, err := a.establish(ctx, dir, settings)
	if err != nil {
		return "", err
	}

	// A broken dependency declaration fails the build before the backend
	// gets to run.
	_, vertex := a.telemetry.Record(ctx, "compute-requirements")
	_, err = a.deps.Resolve(inv.depsPath, inv.matrix, domain.RequirementsRun)
	vertex.Complete(err)
	if err != nil {
		return "", err
	}

	_, vertex = a.telemetry.Record(ctx, "stamp-commit")
	err = a.stamper.Stamp(ctx, dir, inv.cfg)
	vertex.Complete(err)
	if err != nil {
		return "", err
	}

	_, vertex = a.telemetry.Record(ctx, "delegate")
	basename, err := delegate(ctx, inv)
	vertex.Complete(err)
	return basename, err
}
