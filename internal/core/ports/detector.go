package ports

import (
	"context"

	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
)

// Detector determines the CUDA context for one hook invocation.
//
// Detection may run an external process (the toolchain probe); the result
// is never cached because the environment can differ between isolated
// build and install steps.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type Detector interface {
	Detect(ctx context.Context, cfg *domain.ResolvedConfig, matrix domain.BuildMatrix) (domain.AcceleratorContext, error)
}
