package xrandr

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cloister/internal/adapters/shell"
	"go.trai.ch/cloister/internal/core/ports"
)

const NodeID graft.ID = "adapter.display_query"

func init() {
	graft.Register(graft.Node[ports.DisplayQuery]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.DisplayQuery, error) {
			sys, err := graft.Dep[ports.System](ctx)
			if err != nil {
				return nil, err
			}
			return NewQuery(sys), nil
		},
	})
}
