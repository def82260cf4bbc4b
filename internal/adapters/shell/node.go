package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cloister/internal/adapters/logger"
	"go.trai.ch/cloister/internal/core/ports"
)

const NodeID graft.ID = "adapter.system"

func init() {
	graft.Register(graft.Node[ports.System]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.System, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSystem(log), nil
		},
	})
}
