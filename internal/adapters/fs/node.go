package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trafficlens/internal/core/ports"
)

// LoaderNodeID provides the ports.ImageLoader. The icon resolver depends on a
// run-time asset directory and is built by the app instead.
const LoaderNodeID graft.ID = "adapter.fs.loader"

func init() {
	graft.Register(graft.Node[ports.ImageLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageLoader, error) {
			return NewImageLoader(), nil
		},
	})
}
