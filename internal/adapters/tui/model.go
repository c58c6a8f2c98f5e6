package tui

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/trafficlens/internal/adapters/telemetry"
	"go.trai.ch/trafficlens/internal/core/domain"
)

const nodeListWidthRatio = 0.3

// Controls steers the render loop from key bindings. Implementations must be
// safe to call from the dashboard goroutine.
type Controls interface {
	// Select replaces the selection; no IDs clears it.
	Select(ids ...string)
	// Zoom changes the zoom by a number of steps, negative zooms out.
	Zoom(steps float64)
	// Fit fits the view to the selection neighbourhood or the whole graph.
	Fit()
	// ToggleAnimation switches particle animation on or off.
	ToggleAnimation()
}

// SpanRow is a finished span shown in the activity pane.
type SpanRow struct {
	Name     string
	Duration time.Duration
	Err      error
}

// Model is the dashboard state.
type Model struct {
	Controls Controls
	Output   *termenv.Output

	Status domain.LoopStatus

	Nodes      []string
	Cursor     int
	ListOffset int
	ListHeight int
	Selected   string

	Stats    domain.SelectionStats
	HasStats bool

	// Spans holds the most recent spans, oldest first.
	Spans    []SpanRow
	MaxSpans int

	Width  int
	Height int
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.Cursor < m.ListOffset {
		m.ListOffset = m.Cursor
	} else if m.Cursor >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.Cursor - m.ListHeight + 1
	}
}

func (m *Model) cursorNode() (string, bool) {
	if m.Cursor >= 0 && m.Cursor < len(m.Nodes) {
		return m.Nodes[m.Cursor], true
	}
	return "", false
}

func (m *Model) pushSpan(row SpanRow) {
	limit := m.MaxSpans
	if limit <= 0 {
		limit = defaultMaxSpans
	}
	m.Spans = append(m.Spans, row)
	if over := len(m.Spans) - limit; over > 0 {
		m.Spans = slices.Delete(m.Spans, 0, over)
	}
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // key dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		header := lipgloss.Height(titleStyle.Render("NODES") + "\n\n")
		status := lipgloss.Height(m.statusLine())
		m.ListHeight = max(1, msg.Height-header-status)
		m.ensureVisible()

	case MsgStatus:
		m.Status = msg.Status

	case MsgGraph:
		current, hadCursor := m.cursorNode()
		m.Nodes = slices.Clone(msg.NodeIDs)
		m.Cursor = 0
		if hadCursor {
			if i := slices.Index(m.Nodes, current); i >= 0 {
				m.Cursor = i
			}
		}
		if m.Selected != "" && !slices.Contains(m.Nodes, m.Selected) {
			m.Selected = ""
		}
		m.ensureVisible()

	case MsgSelection:
		m.Stats = msg.Stats
		m.HasStats = msg.OK

	case telemetry.MsgSpanEnd:
		m.pushSpan(SpanRow{Name: msg.Name, Duration: msg.Duration, Err: msg.Err})
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
			m.ensureVisible()
		}
	case "j", "down":
		if m.Cursor < len(m.Nodes)-1 {
			m.Cursor++
			m.ensureVisible()
		}
	case "enter", " ":
		if id, ok := m.cursorNode(); ok {
			m.Selected = id
			m.control(func(c Controls) { c.Select(id) })
		}
	case "esc":
		m.Selected = ""
		m.HasStats = false
		m.control(func(c Controls) { c.Select() })
	case "+", "=":
		m.control(func(c Controls) { c.Zoom(1) })
	case "-":
		m.control(func(c Controls) { c.Zoom(-1) })
	case "f":
		m.control(Controls.Fit)
	case "a":
		m.control(Controls.ToggleAnimation)
	}
	return nil
}

func (m *Model) control(fn func(Controls)) {
	if m.Controls != nil {
		fn(m.Controls)
	}
}
