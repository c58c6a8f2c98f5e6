package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trafficlens/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/trafficlens/internal/adapters/graphfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/trafficlens/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/trafficlens/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/trafficlens/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/trafficlens/internal/engine/assets"
	"go.trai.ch/trafficlens/internal/engine/particles"
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
			logger.NodeID,
			config.NodeID,
			config.WatcherNodeID,
			graphfile.NodeID,
			assets.NodeID,
			particles.StoreNodeID,
			metrics.NodeID,
			metrics.RegistryNodeID,
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
			metrics.RegistryNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			reg, err := graft.Dep[*metrics.Registry](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log, reg), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	watcher, err := graft.Dep[ports.SettingsWatcher](ctx)
	if err != nil {
		return nil, err
	}

	graphs, err := graft.Dep[*graphfile.Loader](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*assets.Cache](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[*particles.Store](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.RenderMetrics](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[*metrics.Registry](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, loader, watcher, graphs, cache, store, m, tracer).
		WithMetricsHandler(reg.Handler()), nil
}
