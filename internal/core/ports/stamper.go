package ports

import (
	"context"

	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
)

// CommitStamper rewrites commit-marker lines in the configured target
// files. Stamping is a convenience, not a build-correctness requirement:
// implementations must degrade to a no-op when no revision can be
// determined.
//
//go:generate go run go.uber.org/mock/mockgen -source=stamper.go -destination=mocks/mock_stamper.go -package=mocks
type CommitStamper interface {
	Stamp(ctx context.Context, dir string, cfg *domain.ResolvedConfig) error
}
