package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trafficlens/internal/core/ports"
)

const (
	// RegistryNodeID provides the concrete *Registry so the CLI can serve it.
	RegistryNodeID graft.ID = "adapter.metrics.registry"
	// NodeID provides the registry as ports.RenderMetrics.
	NodeID graft.ID = "adapter.metrics"
)

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[ports.RenderMetrics]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RegistryNodeID},
		Run: func(ctx context.Context) (ports.RenderMetrics, error) {
			reg, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}
			return reg, nil
		},
	})
}
