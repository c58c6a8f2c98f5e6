package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trafficlens/internal/adapters/logger"
	"go.trai.ch/trafficlens/internal/core/ports"
)

const (
	// NodeID provides the ports.SettingsLoader.
	NodeID graft.ID = "adapter.config_loader"
	// WatcherNodeID provides the ports.SettingsWatcher.
	WatcherNodeID graft.ID = "adapter.config_watcher"
)

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.SettingsWatcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsWatcher, error) {
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(loader, log), nil
		},
	})
}
