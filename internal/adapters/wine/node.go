package wine

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cloister/internal/adapters/logger"
	"go.trai.ch/cloister/internal/adapters/shell"
	"go.trai.ch/cloister/internal/core/ports"
)

const NodeID graft.ID = "adapter.compatibility"

func init() {
	graft.Register(graft.Node[ports.CompatibilityProvisioner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CompatibilityProvisioner, error) {
			sys, err := graft.Dep[ports.System](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvisioner(sys, log), nil
		},
	})
}
