package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cloister/internal/adapters/binfmt"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cloister/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cloister/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cloister/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/cloister/internal/adapters/state"              //nolint:depguard // Wired in app layer
	"go.trai.ch/cloister/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/cloister/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/cloister/internal/adapters/wine"               //nolint:depguard // Wired in app layer
	"go.trai.ch/cloister/internal/core/ports"
	"go.trai.ch/cloister/internal/engine/display"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			binfmt.NodeID,
			wine.NodeID,
			display.NodeID,
			state.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			shell.NodeID,
			config.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	sys, err := graft.Dep[ports.System](ctx)
	if err != nil {
		return nil, err
	}

	classifier, err := graft.Dep[ports.Classifier](ctx)
	if err != nil {
		return nil, err
	}

	compat, err := graft.Dep[ports.CompatibilityProvisioner](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*display.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, sys, classifier, compat, resolver, store, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	sys, err := graft.Dep[ports.System](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, sys, loader, telemetry), nil
}
