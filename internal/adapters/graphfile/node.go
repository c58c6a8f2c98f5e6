package graphfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trafficlens/internal/adapters/logger"
	"go.trai.ch/trafficlens/internal/core/ports"
)

// NodeID provides the concrete *Loader; the app reconfigures it when settings change.
const NodeID graft.ID = "adapter.graphfile"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
