package depfile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
)

const NodeID graft.ID = "adapter.dependency_resolver"

func init() {
	graft.Register(graft.Node[ports.DependencyResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.DependencyResolver, error) {
			return NewResolver(), nil
		},
	})
}
