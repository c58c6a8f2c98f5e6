package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	listWidth := int(float64(m.Width) * nodeListWidthRatio)
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		paneStyle.Width(listWidth).Render(m.nodeList()),
		paneStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.selectionPane(),
			"",
			m.activityPane(),
		)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, m.statusLine(), body)
}

func (m *Model) statusLine() string {
	s := m.Status
	animate := "off"
	if s.Animate {
		animate = "on"
	}
	return titleStyle.Render("TRAFFICLENS") + " " + statusStyle.Render(fmt.Sprintf(
		"fps %d | particles %d | nodes %d | edges %d | frames %d/%d skipped | zoom %.2f | animate %s",
		s.FPS, s.Particles, s.Nodes, s.Edges, s.Rendered, s.Skipped, s.Zoom, animate,
	))
}

func (m *Model) nodeList() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("NODES") + "\n\n")

	start := m.ListOffset
	end := min(m.ListOffset+m.ListHeight, len(m.Nodes))
	start = min(start, end)

	for i := start; i < end; i++ {
		s.WriteString(m.renderNodeRow(i) + "\n")
	}
	return s.String()
}

func (m *Model) renderNodeRow(index int) string {
	id := m.Nodes[index]

	cursor := "  "
	style := lipgloss.NewStyle()
	if index == m.Cursor {
		cursor = cursorStyle.Render("> ")
		style = cursorStyle
	}

	icon := "○"
	if id == m.Selected {
		icon = "●"
		style = selectedStyle
	}
	return cursor + style.Render(icon+" "+id)
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func (m *Model) selectionPane() string {
	if !m.HasStats {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render("SELECTION"),
			mutedStyle.Render("enter selects a node, esc clears"),
		)
	}

	st := m.Stats
	var s strings.Builder
	fmt.Fprintf(&s, "%s  bps %s  eps %s  pps %s\n", selectedStyle.Render(st.Node), dash(st.BPS), dash(st.EPS), dash(st.PPS))
	if len(st.Interfaces) == 0 {
		s.WriteString(mutedStyle.Render("no connections"))
	}
	for _, row := range st.Interfaces {
		fmt.Fprintf(&s, "%-16s -> %-20s %-10s bps %-8s eps %-8s pps %s\n",
			row.Interface, row.RemoteHost, dash(row.RemoteInterface), dash(row.BPS), dash(row.EPS), dash(row.PPS))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("SELECTION"),
		strings.TrimRight(s.String(), "\n"),
	)
}

func (m *Model) activityPane() string {
	lines := make([]string, 0, len(m.Spans)+1)
	lines = append(lines, titleStyle.Render("ACTIVITY"))
	if len(m.Spans) == 0 {
		lines = append(lines, mutedStyle.Render("waiting for spans..."))
	}
	for i := len(m.Spans) - 1; i >= 0; i-- {
		span := m.Spans[i]
		line := fmt.Sprintf("%-14s %8s", span.Name, span.Duration.Round(10*time.Microsecond))
		if span.Err != nil {
			line = errorStyle.Render(line + "  " + span.Err.Error())
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
