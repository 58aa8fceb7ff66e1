package ports

import "github.com/rapidsai/rapids-build-backend/internal/core/domain"

// DependencyResolver resolves the dependency-declaration file against a
// build matrix into a concrete requirement list.
//
//go:generate go run go.uber.org/mock/mockgen -source=deps.go -destination=mocks/mock_deps.go -package=mocks
type DependencyResolver interface {
	// Resolve returns the requirement list of the given category. The
	// returned ordering is stable across invocations for reproducible
	// builds.
	Resolve(path string, matrix domain.BuildMatrix, category domain.RequirementCategory) ([]domain.RequirementSpecifier, error)

	// Registry returns the suffixable-package registry for the given
	// dependency-declaration file. A missing or unreadable file yields
	// the built-in registry.
	Registry(path string) PackageRegistry
}

// PackageRegistry answers whether a package participates in CUDA-suffixed
// naming. It is owned by the dependency-declaration resolver and injected
// into the rewriter so it can be swapped in tests.
type PackageRegistry interface {
	IsSuffixable(name string) bool
}
