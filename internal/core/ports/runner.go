package ports

import "context"

// CommandRunner runs short-lived external processes such as the CUDA
// toolchain probe and the version-control query. It exists as a port so
// adapters that shell out can be tested without the real tools installed.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// LookPath searches PATH for an executable.
	LookPath(name string) (string, error)
	// Run executes the command and returns its standard output. A non-zero
	// exit status is an error.
	Run(ctx context.Context, name string, args ...string) (string, error)
}
