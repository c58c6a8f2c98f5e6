package tui

import "go.trai.ch/trafficlens/internal/core/domain"

// MsgStatus carries the once-per-second loop status.
type MsgStatus struct {
	Status domain.LoopStatus
}

// MsgGraph carries the node IDs of a new snapshot.
type MsgGraph struct {
	NodeIDs []string
}

// MsgSelection carries the statistics of the selected node.
type MsgSelection struct {
	Stats domain.SelectionStats
	OK    bool
}
