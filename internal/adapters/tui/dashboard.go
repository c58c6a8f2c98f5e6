package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
)

var _ ports.Dashboard = (*Dashboard)(nil)

// Dashboard runs the Bubble Tea model as a ports.Dashboard.
type Dashboard struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewDashboard creates a dashboard for model.
func NewDashboard(model *Model, opts ...tea.ProgramOption) *Dashboard {
	return &Dashboard{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the program in a background goroutine.
func (d *Dashboard) Start(_ context.Context) error {
	go func() {
		_, err := d.program.Run()
		d.errCh <- err
	}()
	return nil
}

// Stop signals the program to quit.
func (d *Dashboard) Stop() error {
	d.program.Quit()
	return nil
}

// Wait blocks until the program has terminated.
func (d *Dashboard) Wait() error {
	return <-d.errCh
}

// Send forwards a message to the program; it lets the telemetry bridge
// report spans.
func (d *Dashboard) Send(msg tea.Msg) {
	d.program.Send(msg)
}

// OnStatus forwards the loop status.
func (d *Dashboard) OnStatus(status domain.LoopStatus) {
	d.program.Send(MsgStatus{Status: status})
}

// OnGraph forwards the node IDs of a new snapshot.
func (d *Dashboard) OnGraph(nodeIDs []string) {
	d.program.Send(MsgGraph{NodeIDs: nodeIDs})
}

// OnSelection forwards the selection statistics.
func (d *Dashboard) OnSelection(stats domain.SelectionStats, ok bool) {
	d.program.Send(MsgSelection{Stats: stats, OK: ok})
}

// Program returns the underlying tea.Program for testing.
func (d *Dashboard) Program() *tea.Program {
	return d.program
}
