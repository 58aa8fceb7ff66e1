// Package cuda determines the CUDA major version a build targets.
package cuda

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/rapidsai/rapids-build-backend/internal/core/domain"
	"github.com/rapidsai/rapids-build-backend/internal/core/ports"
	"go.trai.ch/zerr"
)

// releaseRE matches the version line of `nvcc --version`, e.g.
// "Cuda compilation tools, release 12.4, V12.4.131".
var releaseRE = regexp.MustCompile(`release (\d+)\.(\d+)`)

var _ ports.Detector = (*Detector)(nil)

// Detector implements ports.Detector. Sources, in order: the disable
// switch, the build matrix, then a toolchain probe.
type Detector struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewDetector creates a new Detector.
func NewDetector(runner ports.CommandRunner, logger ports.Logger) *Detector {
	return &Detector{runner: runner, logger: logger}
}

// Detect determines the CUDA context for one hook invocation.
func (d *Detector) Detect(ctx context.Context, cfg *domain.ResolvedConfig, matrix domain.BuildMatrix) (domain.AcceleratorContext, error) {
	if cfg.DisableCUDA {
		return domain.NotTargeted(), nil
	}

	if value, ok := matrix[domain.MatrixAxisCUDA]; ok {
		major, err := majorOf(value)
		if err != nil {
			return domain.NotTargeted(), zerr.With(zerr.Wrap(domain.ErrMatrix, "malformed cuda axis value"), "value", value)
		}
		return domain.Detected(major), nil
	}

	major, ok := d.probe(ctx)
	if !ok {
		if cfg.RequireCUDA {
			return domain.NotTargeted(), zerr.Wrap(domain.ErrAcceleratorRequired, "no CUDA toolchain detected and require-cuda is set")
		}
		d.logger.Info("no CUDA toolchain detected, building without a suffix")
		return domain.NotTargeted(), nil
	}
	return domain.Detected(major), nil
}

// probe asks the CUDA compiler for its version. Any failure means the
// toolchain is not usable here, which is not an error by itself.
func (d *Detector) probe(ctx context.Context) (int, bool) {
	if _, err := d.runner.LookPath("nvcc"); err != nil {
		return 0, false
	}

	out, err := d.runner.Run(ctx, "nvcc", "--version")
	if err != nil {
		d.logger.Warn("nvcc is present but failed to report its version")
		return 0, false
	}

	match := releaseRE.FindStringSubmatch(out)
	if match == nil {
		d.logger.Warn("could not parse the nvcc version output")
		return 0, false
	}
	major, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return major, true
}

// majorOf parses the major component of a version string such as "12"
// or "12.1".
func majorOf(value string) (int, error) {
	head, _, _ := strings.Cut(value, ".")
	return strconv.Atoi(head)
}
