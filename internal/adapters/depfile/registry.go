package depfile

import "github.com/rapidsai/rapids-build-backend/internal/core/ports"

// suffixablePackages is the built-in set of packages published under
// CUDA-suffixed names on PyPI. Projects extend it through the top-level
// `suffixable:` list of their dependency-declaration file.
var suffixablePackages = map[string]struct{}{
	"cucim":            {},
	"cudf":             {},
	"cudf-polars":      {},
	"cugraph":          {},
	"cuml":             {},
	"cuproj":           {},
	"cuspatial":        {},
	"cuvs":             {},
	"cuxfilter":        {},
	"dask-cudf":        {},
	"distributed-ucxx": {},
	"libcudf":          {},
	"libcugraph":       {},
	"libcuml":          {},
	"libcuspatial":     {},
	"libkvikio":        {},
	"libraft":          {},
	"librmm":           {},
	"libucxx":          {},
	"nx-cugraph":       {},
	"pylibcudf":        {},
	"pylibcugraph":     {},
	"pylibraft":        {},
	"pylibwholegraph":  {},
	"raft-dask":        {},
	"rmm":              {},
	"ucx-py":           {},
	"ucxx":             {},
}

var _ ports.PackageRegistry = (*Registry)(nil)

// Registry answers suffixability queries for the rewriter.
type Registry struct {
	extra map[string]struct{}
}

func newRegistry(extra []string) *Registry {
	reg := &Registry{extra: make(map[string]struct{}, len(extra))}
	for _, name := range extra {
		reg.extra[name] = struct{}{}
	}
	return reg
}

// IsSuffixable reports whether the package participates in CUDA-suffixed
// naming.
func (g *Registry) IsSuffixable(name string) bool {
	if _, ok := suffixablePackages[name]; ok {
		return true
	}
	_, ok := g.extra[name]
	return ok
}
