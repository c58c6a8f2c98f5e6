// Package linear reports the live loop as plain log lines for non-interactive
// terminals.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.trai.ch/trafficlens/internal/adapters/telemetry"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
)

var _ ports.Dashboard = (*Reporter)(nil)

// Reporter implements ports.Dashboard by printing one line per event.
type Reporter struct {
	output *termenv.Output

	mu       sync.Mutex
	ctx      context.Context
	done     chan struct{}
	stopOnce sync.Once
	selected string
}

// NewReporter creates a reporter writing to w, stdout when nil.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		output: termenv.NewOutput(w, termenv.WithProfile(colorProfile())),
		ctx:    context.Background(),
		done:   make(chan struct{}),
	}
}

func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Start records ctx; Wait returns when it is cancelled.
func (r *Reporter) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctx = ctx
	return nil
}

// Stop releases Wait.
func (r *Reporter) Stop() error {
	r.stopOnce.Do(func() { close(r.done) })
	return nil
}

// Wait blocks until Stop is called or the start context is cancelled.
func (r *Reporter) Wait() error {
	r.mu.Lock()
	ctx := r.ctx
	r.mu.Unlock()

	select {
	case <-r.done:
	case <-ctx.Done():
	}
	return nil
}

func (r *Reporter) println(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.output, s)
}

// OnStatus prints the loop status.
func (r *Reporter) OnStatus(s domain.LoopStatus) {
	r.println(fmt.Sprintf(
		"fps=%d particles=%d nodes=%d edges=%d rendered=%d skipped=%d zoom=%.2f animate=%t",
		s.FPS, s.Particles, s.Nodes, s.Edges, s.Rendered, s.Skipped, s.Zoom, s.Animate,
	))
}

// OnGraph prints the size of a new snapshot.
func (r *Reporter) OnGraph(nodeIDs []string) {
	r.println(r.output.String(fmt.Sprintf("graph refreshed: %d nodes", len(nodeIDs))).Faint().String())
}

// OnSelection prints the selected node when it changes.
func (r *Reporter) OnSelection(stats domain.SelectionStats, ok bool) {
	r.mu.Lock()
	changed := stats.Node != r.selected || !ok
	if ok {
		r.selected = stats.Node
	} else {
		r.selected = ""
	}
	r.mu.Unlock()
	if !ok || !changed {
		return
	}

	var s strings.Builder
	fmt.Fprintf(&s, "selected %s bps=%s eps=%s pps=%s", stats.Node, stats.BPS, stats.EPS, stats.PPS)
	for _, row := range stats.Interfaces {
		fmt.Fprintf(&s, "\n  %s -> %s %s", row.Interface, row.RemoteHost, row.RemoteInterface)
	}
	r.println(s.String())
}

// Send prints failed spans reported by the telemetry bridge.
func (r *Reporter) Send(msg tea.Msg) {
	span, ok := msg.(telemetry.MsgSpanEnd)
	if !ok || span.Err == nil {
		return
	}
	line := fmt.Sprintf("%s failed: %v", span.Name, span.Err)
	r.println(r.output.String(line).Foreground(r.output.Color("1")).String())
}
