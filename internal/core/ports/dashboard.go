package ports

import (
	"context"

	"go.trai.ch/trafficlens/internal/core/domain"
)

// Dashboard presents the state of the live render loop.
//
//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks
type Dashboard interface {
	// Start launches the dashboard without blocking.
	Start(ctx context.Context) error
	// Stop asks the dashboard to terminate.
	Stop() error
	// Wait blocks until the dashboard has terminated.
	Wait() error

	// OnStatus reports the loop status, once per second.
	OnStatus(status domain.LoopStatus)
	// OnGraph reports the node IDs of a freshly published snapshot.
	OnGraph(nodeIDs []string)
	// OnSelection reports the statistics of the selected node; ok is false
	// unless exactly one node is selected.
	OnSelection(stats domain.SelectionStats, ok bool)
}
