package cuda

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/logger"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/shell"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
)

const NodeID graft.ID = "adapter.cuda_detector"

func init() {
	graft.Register(graft.Node[ports.Detector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Detector, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDetector(runner, log), nil
		},
	})
}
