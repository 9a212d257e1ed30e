package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/routekit/elbow/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// routeBrowser - Interactive route inspection
// =============================================================================

// routeBrowser is the bubbletea model for browsing routed requests. The
// list view shows one line per route; enter opens a detail view with the
// full waypoint breakdown.
type routeBrowser struct {
	outcomes []pipeline.Outcome
	cursor   int
	detail   bool
	height   int
	offset   int
}

// newRouteBrowser creates a browser over the batch outcomes.
func newRouteBrowser(outcomes []pipeline.Outcome) routeBrowser {
	return routeBrowser{
		outcomes: outcomes,
		height:   15,
	}
}

func (m routeBrowser) Init() tea.Cmd {
	return nil
}

func (m routeBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.detail {
				m.detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if !m.detail && m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if !m.detail && m.cursor < len(m.outcomes)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			if len(m.outcomes) > 0 {
				m.detail = true
			}
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m routeBrowser) View() string {
	if m.detail {
		return m.detailView()
	}
	return m.listView()
}

func (m routeBrowser) listView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Routes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ detail  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.outcomes))
	for i := m.offset; i < end; i++ {
		o := m.outcomes[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		var summary string
		if o.Err != nil {
			summary = listErrorStyle.Render("failed")
		} else {
			summary = listDimStyle.Render(fmt.Sprintf("%d bends · length %.0f", o.Byproduct.Bends(), o.Byproduct.Length()))
		}

		b.WriteString(cursor + style.Render(o.Name) + "  " + summary + "\n")
	}

	return b.String()
}

func (m routeBrowser) detailView() string {
	o := m.outcomes[m.cursor]

	var b strings.Builder
	b.WriteString(StyleTitle.Render(o.Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	if o.Err != nil {
		b.WriteString(listErrorStyle.Render(o.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	bp := o.Byproduct
	row := func(key, value string) {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%-10s", key)) + StyleValue.Render(value) + "\n")
	}
	row("path", formatPath(bp.Path()))
	row("headings", formatHeadings(bp.Headings()))
	row("bends", fmt.Sprintf("%d", bp.Bends()))
	row("length", fmt.Sprintf("%.1f", bp.Length()))
	row("rulers", fmt.Sprintf("%d horizontal, %d vertical", len(bp.HRulers), len(bp.VRulers)))
	row("grid", fmt.Sprintf("%d cells", len(bp.Grid)))
	row("spots", fmt.Sprintf("%d waypoints", len(bp.Spots)))
	if o.CacheHit {
		b.WriteString(styleCached.Render(iconCached) + "\n")
	}

	return b.String()
}
