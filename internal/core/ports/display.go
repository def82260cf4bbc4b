package ports

import (
	"context"

	"go.trai.ch/cloister/internal/core/domain"
)

// DisplayQuery enumerates the display subsystem's outputs and their
// connection state at query time.
//
//go:generate go run go.uber.org/mock/mockgen -source=display.go -destination=mocks/mock_display.go -package=mocks
type DisplayQuery interface {
	// Outputs returns every output the display subsystem reports, connected
	// or not. It returns domain.ErrDisplayToolingUnavailable when the query
	// tooling itself cannot run.
	Outputs(ctx context.Context) ([]domain.Output, error)
}
