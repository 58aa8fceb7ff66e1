package rewrite_test

import (
	"testing"

	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports/mocks"
	"github.com/rapidsai/rapids-build-backend/internal/engine/rewrite"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRewriter(t *testing.T, suffixable ...string) *rewrite.Rewriter {
	t.Helper()
	registry := mocks.NewMockPackageRegistry(gomock.NewController(t))
	registry.EXPECT().IsSuffixable(gomock.Any()).DoAndReturn(func(name string) bool {
		for _, s := range suffixable {
			if s == name {
				return true
			}
		}
		return false
	}).AnyTimes()
	return rewrite.New(registry)
}

func TestName(t *testing.T) {
	r := newRewriter(t)

	assert.Equal(t, "rmm-cu12", r.Name("rmm", domain.Detected(12)))
	assert.Equal(t, "rmm-cu11", r.Name("rmm", domain.Detected(11)))
	assert.Equal(t, "rmm", r.Name("rmm", domain.NotTargeted()))
}

func TestSpecifiers(t *testing.T) {
	r := newRewriter(t, "rmm", "cudf")

	tests := []struct {
		name        string
		spec        string
		ctx         domain.AcceleratorContext
		onlyRelease bool
		want        string
	}{
		{name: "suffix and floor", spec: "rmm", ctx: domain.Detected(12), want: "rmm-cu12>=0.0.0a0"},
		{name: "pinned keeps constraint", spec: "rmm==24.6.0", ctx: domain.Detected(12), want: "rmm-cu12==24.6.0"},
		{name: "range keeps constraint", spec: "cudf>=24.4,<24.8", ctx: domain.Detected(12), want: "cudf-cu12>=24.4,<24.8"},
		{name: "non-suffixable passes through", spec: "numpy>=1.23", ctx: domain.Detected(12), want: "numpy>=1.23"},
		{name: "non-suffixable without constraint", spec: "numpy", ctx: domain.Detected(12), want: "numpy"},
		{name: "only release suppresses floor", spec: "rmm", ctx: domain.Detected(12), onlyRelease: true, want: "rmm-cu12"},
		{name: "only release keeps constraint", spec: "rmm==24.6.0", ctx: domain.Detected(12), onlyRelease: true, want: "rmm-cu12==24.6.0"},
		{name: "extras get suffix and floor", spec: "cudf[test]", ctx: domain.Detected(12), want: "cudf-cu12[test]>=0.0.0a0"},
		{name: "extras keep constraint", spec: "cudf[test]>=24.4", ctx: domain.Detected(12), want: "cudf-cu12[test]>=24.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Specifiers([]domain.RequirementSpecifier{domain.ParseRequirement(tt.spec)}, tt.ctx, tt.onlyRelease)
			assert.Equal(t, tt.want, got[0].String())
		})
	}
}

func TestSpecifiers_NotTargetedPassesThrough(t *testing.T) {
	r := newRewriter(t, "rmm", "cudf")

	specs := []domain.RequirementSpecifier{
		domain.ParseRequirement("rmm"),
		domain.ParseRequirement("rmm==24.6.0"),
		domain.ParseRequirement("cudf[test]"),
		domain.ParseRequirement("numpy"),
	}
	got := r.Specifiers(specs, domain.NotTargeted(), false)

	assert.Equal(t, "rmm", got[0].String())
	assert.Equal(t, "rmm==24.6.0", got[1].String())
	assert.Equal(t, "cudf[test]", got[2].String())
	assert.Equal(t, "numpy", got[3].String())
}

func TestSpecifiers_PreservesOrder(t *testing.T) {
	r := newRewriter(t, "rmm")

	specs := []domain.RequirementSpecifier{
		domain.ParseRequirement("numpy>=1.23"),
		domain.ParseRequirement("rmm"),
		domain.ParseRequirement("pandas"),
	}
	got := r.Specifiers(specs, domain.Detected(12), false)

	assert.Equal(t, "numpy>=1.23", got[0].String())
	assert.Equal(t, "rmm-cu12>=0.0.0a0", got[1].String())
	assert.Equal(t, "pandas", got[2].String())
}

func TestSpecifiers_DoesNotMutateInput(t *testing.T) {
	r := newRewriter(t, "rmm")

	specs := []domain.RequirementSpecifier{domain.ParseRequirement("rmm")}
	_ = r.Specifiers(specs, domain.Detected(12), false)

	assert.Equal(t, "rmm", specs[0].String())
}
