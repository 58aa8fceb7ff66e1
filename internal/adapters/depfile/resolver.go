// Package depfile resolves the project's dependency-declaration file
// against a build matrix into concrete requirement lists.
package depfile

import (
	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
	"go.trai.ch/zerr"
)

// categoryFileKeys maps a requirement category to its conventional file
// key. Files that use the bare category name as a key work too.
var categoryFileKeys = map[domain.RequirementCategory]string{
	domain.RequirementsBuild: "py_build",
	domain.RequirementsHost:  "py_host",
	domain.RequirementsRun:   "py_run",
}

var _ ports.DependencyResolver = (*Resolver)(nil)

// Resolver implements ports.DependencyResolver. The file is re-read on
// every call; hook invocations are short-lived processes.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the requirement list of the given category, in include
// order and then declaration order.
func (r *Resolver) Resolve(path string, matrix domain.BuildMatrix, category domain.RequirementCategory) ([]domain.RequirementSpecifier, error) {
	doc, err := load(path)
	if err != nil {
		return nil, err
	}

	entry, err := doc.fileFor(category)
	if err != nil {
		return nil, err
	}

	var specs []domain.RequirementSpecifier
	for _, include := range entry.Includes {
		list, ok := doc.Dependencies[include]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrDependencyResolution, "include names no dependency list"), "include", include)
		}

		for _, common := range list.Common {
			if !common.OutputTypes.matches(entry.Output) {
				continue
			}
			for _, pkg := range common.Packages {
				specs = append(specs, domain.ParseRequirement(pkg))
			}
		}

		for _, specific := range list.Specific {
			if !specific.OutputTypes.matches(entry.Output) {
				continue
			}
			branch, ok := matchBranch(specific.Matrices, matrix)
			if !ok {
				return nil, zerr.With(zerr.With(
					zerr.Wrap(domain.ErrDependencyResolution, "no matrix branch matches and no fallback is declared"),
					"include", include), "matrix", map[string]string(matrix))
			}
			for _, pkg := range branch.Packages {
				specs = append(specs, domain.ParseRequirement(pkg))
			}
		}
	}

	return specs, nil
}

// Registry returns the suffixable-package registry for the given file. A
// file that cannot be read contributes nothing beyond the built-in set;
// Resolve reports the failure where it matters.
func (r *Resolver) Registry(path string) ports.PackageRegistry {
	doc, err := load(path)
	if err != nil {
		return newRegistry(nil)
	}
	return newRegistry(doc.Suffixable)
}

func (d *depsFile) fileFor(category domain.RequirementCategory) (fileEntry, error) {
	if key, ok := categoryFileKeys[category]; ok {
		if entry, ok := d.Files[key]; ok {
			return entry, nil
		}
	}
	if entry, ok := d.Files[string(category)]; ok {
		return entry, nil
	}
	return fileEntry{}, zerr.With(zerr.Wrap(domain.ErrDependencyResolution, "no file entry for requirement category"), "category", string(category))
}

// matchBranch picks the first branch whose matrix axes all match the
// build matrix. A branch without a matrix matches unconditionally.
func matchBranch(branches []matrixBranch, matrix domain.BuildMatrix) (matrixBranch, bool) {
	for _, branch := range branches {
		if branchMatches(branch.Matrix, matrix) {
			return branch, true
		}
	}
	return matrixBranch{}, false
}

func branchMatches(want map[string]string, matrix domain.BuildMatrix) bool {
	for axis, value := range want {
		if matrix[axis] != value {
			return false
		}
	}
	return true
}
