package assets

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trafficlens/internal/adapters/fs"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/trafficlens/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/trafficlens/internal/adapters/metrics" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/trafficlens/internal/core/ports"
)

// NodeID is the unique identifier for the asset cache Graft node.
const NodeID graft.ID = "engine.assets"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.LoaderNodeID,
			logger.NodeID,
			metrics.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			loader, err := graft.Dep[ports.ImageLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			m, err := graft.Dep[ports.RenderMetrics](ctx)
			if err != nil {
				return nil, err
			}

			return NewCache(loader, log, m), nil
		},
	})
}
