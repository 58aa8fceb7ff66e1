// Package rewrite turns base package names and requirement specifiers
// into their deployment-specific form.
package rewrite

import (
	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
)

// nightlyFloor lets pre-release builds satisfy an otherwise unpinned
// specifier. Release pipelines suppress it with only-release-deps.
const nightlyFloor = ">=0.0.0a0"

// Rewriter applies CUDA suffixing and the nightly floor constraint. It is
// a pure function of its inputs and the injected registry.
type Rewriter struct {
	Registry ports.PackageRegistry
}

// New creates a Rewriter using the given registry.
func New(registry ports.PackageRegistry) *Rewriter {
	return &Rewriter{Registry: registry}
}

// Name returns the deployment name for a base package name.
func (r *Rewriter) Name(base string, ctx domain.AcceleratorContext) string {
	return base + ctx.Suffix()
}

// Specifiers rewrites a requirement list in order. When the context
// targets an accelerator, suffixable names get the CUDA suffix and
// suffixable specifiers without a version constraint get the nightly
// floor unless onlyRelease is set. Without a target the list passes
// through untouched.
func (r *Rewriter) Specifiers(specs []domain.RequirementSpecifier, ctx domain.AcceleratorContext, onlyRelease bool) []domain.RequirementSpecifier {
	out := make([]domain.RequirementSpecifier, len(specs))
	for i, spec := range specs {
		out[i] = r.rewrite(spec, ctx, onlyRelease)
	}
	return out
}

func (r *Rewriter) rewrite(spec domain.RequirementSpecifier, ctx domain.AcceleratorContext, onlyRelease bool) domain.RequirementSpecifier {
	if !ctx.Targeted() || spec.Name == "" || !r.Registry.IsSuffixable(spec.Name) {
		return spec
	}

	next := domain.RequirementSpecifier{
		Name:   r.Name(spec.Name, ctx),
		Extras: spec.Extras,
		Rest:   spec.Rest,
	}
	if !spec.HasConstraint() && !onlyRelease {
		next.Rest = nightlyFloor
	}
	return next
}
