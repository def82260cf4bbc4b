package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cloister/internal/adapters/config"
	"go.trai.ch/cloister/internal/core/ports"
)

const NodeID graft.ID = "adapter.record_store"

func init() {
	graft.Register(graft.Node[ports.RecordStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.RecordStore, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := loader.Load()
			if err != nil {
				return nil, err
			}
			return NewStore(settings.StateFile)
		},
	})
}
