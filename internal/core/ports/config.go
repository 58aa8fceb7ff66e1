package ports

import "github.com/rapidsai/rapids-build-backend/internal/core/domain"

// ConfigResolver merges the static pyproject.toml table, process
// environment variables and dynamic config settings into the per-invocation
// build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigResolver interface {
	// Resolve reads <dir>/pyproject.toml and applies the precedence
	// dynamic setting > environment variable > static table > default.
	Resolve(dir string, settings map[string]string) (*domain.ResolvedConfig, error)
}
