package git

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/logger"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/shell"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
)

const NodeID graft.ID = "adapter.commit_stamper"

func init() {
	graft.Register(graft.Node[ports.CommitStamper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CommitStamper, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStamper(runner, log), nil
		},
	})
}
