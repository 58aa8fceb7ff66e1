// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/rapidsai/rapids-build-backend/internal/adapters/backend"
	_ "github.com/rapidsai/rapids-build-backend/internal/adapters/config"
	_ "github.com/rapidsai/rapids-build-backend/internal/adapters/cuda"
	_ "github.com/rapidsai/rapids-build-backend/internal/adapters/depfile"
	_ "github.com/rapidsai/rapids-build-backend/internal/adapters/git"
	_ "github.com/rapidsai/rapids-build-backend/internal/adapters/logger"
	_ "github.com/rapidsai/rapids-build-backend/internal/adapters/shell"
	_ "github.com/rapidsai/rapids-build-backend/internal/adapters/telemetry/progrock"
	// Register the app node.
	_ "github.com/rapidsai/rapids-build-backend/internal/app"
)
