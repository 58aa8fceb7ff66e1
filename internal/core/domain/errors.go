package domain

import "go.trai.ch/zerr"

var (
	// ErrConfig is returned when the build configuration cannot be resolved,
	// e.g. a required option is missing or a value fails type coercion.
	ErrConfig = zerr.New("invalid build configuration")

	// ErrMatrix is returned when a matrix entry cannot be parsed.
	ErrMatrix = zerr.New("malformed matrix entry")

	// ErrAcceleratorRequired is returned when the configuration requires CUDA
	// but no CUDA version could be determined.
	ErrAcceleratorRequired = zerr.New("CUDA version could not be determined")

	// ErrDependencyResolution is returned when the dependencies file is
	// missing, malformed, or selects no dependency set for the build matrix.
	ErrDependencyResolution = zerr.New("dependency resolution failed")

	// ErrBuildBackend is returned when the wrapped build backend fails.
	// The proxy propagates it unmodified; build failures are not retried.
	ErrBuildBackend = zerr.New("wrapped build backend failed")

	// ErrHookNotSupported is returned when the wrapped backend does not
	// implement an optional hook.
	ErrHookNotSupported = zerr.New("hook not supported by wrapped backend")
)
