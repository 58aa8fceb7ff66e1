package domain_test

import (
	"testing"

	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
)

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		spec       string
		wantName   string
		wantExtras string
		wantRest   string
	}{
		{spec: "numpy", wantName: "numpy"},
		{spec: "rmm>=24.0", wantName: "rmm", wantRest: ">=24.0"},
		{spec: "cuda-python>=12.1,<12.2.dev0", wantName: "cuda-python", wantRest: ">=12.1,<12.2.dev0"},
		{spec: "dask-cuda==24.4.*", wantName: "dask-cuda", wantRest: "==24.4.*"},
		{spec: "raft-dask[test]", wantName: "raft-dask", wantExtras: "[test]"},
		{spec: "cudf[test,benchmark]>=24.0", wantName: "cudf", wantExtras: "[test,benchmark]", wantRest: ">=24.0"},
		{spec: "scikit_build.core", wantName: "scikit_build.core"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got := domain.ParseRequirement(tt.spec)
			if got.Name != tt.wantName {
				t.Errorf("expected name %q, got %q", tt.wantName, got.Name)
			}
			if got.Extras != tt.wantExtras {
				t.Errorf("expected extras %q, got %q", tt.wantExtras, got.Extras)
			}
			if got.Rest != tt.wantRest {
				t.Errorf("expected rest %q, got %q", tt.wantRest, got.Rest)
			}
			if got.String() != tt.spec {
				t.Errorf("round trip mismatch: %q != %q", got.String(), tt.spec)
			}
		})
	}
}

func TestRequirementSpecifier_HasConstraint(t *testing.T) {
	if domain.ParseRequirement("numpy").HasConstraint() {
		t.Error("bare name should have no constraint")
	}
	if domain.ParseRequirement("rmm[test]").HasConstraint() {
		t.Error("extras alone are not a version constraint")
	}
	if !domain.ParseRequirement("rmm>=24.0").HasConstraint() {
		t.Error("versioned specifier should have a constraint")
	}
}
