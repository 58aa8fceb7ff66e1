package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/backend"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/config"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/cuda"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/depfile"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/git"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/logger"
	"github.com/rapidsai/rapids-build-backend/internal/adapters/telemetry/progrock"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
)

// NodeID is the unique identifier for the main App Graft node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			depfile.NodeID,
			cuda.NodeID,
			git.NodeID,
			backend.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[ports.ConfigResolver](ctx)
			if err != nil {
				return nil, err
			}
			deps, err := graft.Dep[ports.DependencyResolver](ctx)
			if err != nil {
				return nil, err
			}
			detector, err := graft.Dep[ports.Detector](ctx)
			if err != nil {
				return nil, err
			}
			stamper, err := graft.Dep[ports.CommitStamper](ctx)
			if err != nil {
				return nil, err
			}
			backends, err := graft.Dep[ports.BackendFactory](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg, deps, detector, stamper, backends, telemetry, log), nil
		},
	})
}
