package display

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cloister/internal/adapters/logger"
	"go.trai.ch/cloister/internal/adapters/xrandr"
	"go.trai.ch/cloister/internal/core/ports"
)

const NodeID graft.ID = "engine.display_resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{xrandr.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			query, err := graft.Dep[ports.DisplayQuery](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(query, log), nil
		},
	})
}
