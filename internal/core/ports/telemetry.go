package ports

import (
	"context"
	"io"

	"go.trai.ch/cloister/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records provisioning steps as vertices of a progress session.
type Telemetry interface {
	// Record starts recording a new vertex for the named step.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded provisioning step.
type Vertex interface {
	// Stdout returns a writer for the step's output stream.
	Stdout() io.Writer
	// Log records a structured log message associated with this vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
