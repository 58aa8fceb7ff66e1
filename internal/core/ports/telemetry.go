package ports

import "context"

// Telemetry records pipeline stages of a hook invocation.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex for the named stage.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded stage.
type Vertex interface {
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}
