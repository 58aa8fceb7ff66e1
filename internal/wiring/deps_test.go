package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/rapidsai/rapids-build-backend/internal/app"
	_ "github.com/rapidsai/rapids-build-backend/internal/wiring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph builds the full dependency graph once to catch wiring
// mistakes (missing registrations, cycles) at test time.
func TestGraph(t *testing.T) {
	application, _, err := graft.ExecuteFor[*app.App](context.Background())
	require.NoError(t, err)
	assert.NotNil(t, application)
}

func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name
	// of the interface used in Dep[T]. All of our node interfaces live in
	// the shared ports package, so the inference does not apply here.
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}
