package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
)

const NodeID graft.ID = "adapter.config_resolver"

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigResolver, error) {
			return NewResolver(), nil
		},
	})
}
