package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewSearch renders the search screen: the mood input on top, results on
// the left, the shelf panel on the right. The genre menu overlays everything
// while open.
func (m AppModel) viewSearch() string {
	if m.menuOpen {
		return m.renderGenreMenu()
	}

	var b strings.Builder
	b.WriteString("\n" + m.input.View() + "\n\n")

	switch {
	case m.loadingSearch:
		b.WriteString("  " + m.spin.View() + styleLoading.Render(" searching...") + "\n")
	case m.searchErr != "":
		b.WriteString("  " + styleError.Render(m.searchErr) + "\n")
	case m.lastQuery == "" && len(m.searchRaw) == 0:
		b.WriteString("  " + styleDim.Render("Describe a mood and press enter.") + "\n")
	default:
		results := m.renderResults(m.searchProjection(), m.searchCursor, m.pane == PaneResults)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, results, "   ", m.renderShelfPanel()))
	}

	return b.String()
}
