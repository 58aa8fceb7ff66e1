// Package ports defines the core interfaces for the application.
package ports

import "context"

// Backend is the wrapped build backend the proxy delegates to. The method
// set mirrors the standardized hook contract; a backend may implement only
// a subset, in which case the unimplemented methods return
// domain.ErrHookNotSupported and callers apply the documented defaults.
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	// GetRequiresForBuildWheel returns the backend's additional wheel build
	// requirements, one specifier per entry.
	GetRequiresForBuildWheel(ctx context.Context, settings map[string]string) ([]string, error)
	GetRequiresForBuildSdist(ctx context.Context, settings map[string]string) ([]string, error)
	GetRequiresForBuildEditable(ctx context.Context, settings map[string]string) ([]string, error)

	// PrepareMetadataForBuildWheel creates a dist-info directory under
	// metadataDir and returns its basename.
	PrepareMetadataForBuildWheel(ctx context.Context, metadataDir string, settings map[string]string) (string, error)
	PrepareMetadataForBuildEditable(ctx context.Context, metadataDir string, settings map[string]string) (string, error)

	// BuildWheel builds a wheel into wheelDir and returns its basename.
	// metadataDir may be empty.
	BuildWheel(ctx context.Context, wheelDir string, settings map[string]string, metadataDir string) (string, error)
	// BuildSdist builds a source distribution into sdistDir and returns its
	// basename.
	BuildSdist(ctx context.Context, sdistDir string, settings map[string]string) (string, error)
	BuildEditable(ctx context.Context, wheelDir string, settings map[string]string, metadataDir string) (string, error)
}

// BackendFactory resolves the backend executable named by the build-backend
// config option into a Backend. Resolution happens per invocation because
// the backend identifier comes from the invocation-scoped configuration.
type BackendFactory interface {
	// Backend returns a Backend delegating to the named executable, run
	// with dir as its working directory.
	Backend(name, dir string) Backend
}
