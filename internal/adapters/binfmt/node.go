package binfmt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cloister/internal/core/ports"
)

const NodeID graft.ID = "adapter.classifier"

func init() {
	graft.Register(graft.Node[ports.Classifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Classifier, error) {
			return NewClassifier(), nil
		},
	})
}
