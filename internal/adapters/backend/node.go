package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/logger"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
)

const NodeID graft.ID = "adapter.backend_factory"

func init() {
	graft.Register(graft.Node[ports.BackendFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BackendFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
