package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// viewStatusBar renders the persistent top bar: brand, active screen, list
// counts, and a loading hint while a query is in flight.
func (m AppModel) viewStatusBar() string {
	segments := []string{
		styleStatusLabel.Render(" cinemood "),
		styleStatusValue.Render(m.screen.Label()),
		styleStatusValue.Render(fmt.Sprintf("to-watch %d · watched %d", len(m.shelf.ToWatch), len(m.shelf.Watched))),
	}
	if m.loadingSearch || m.loadingBrowse || m.sending {
		segments = append(segments, styleStatusValue.Render(m.spin.View()))
	}

	line := strings.Join(segments, styleStatusValue.Render("  │  "))
	if m.width > 0 {
		if gap := m.width - lipgloss.Width(line) - 2; gap > 0 {
			line += styleStatusValue.Render(strings.Repeat(" ", gap))
		}
	}
	return styleStatusBar.Render(line)
}

// viewHelp renders the bottom help line for the active screen.
func (m AppModel) viewHelp() string {
	var hints []string
	switch m.screen {
	case ScreenSearch:
		if m.typing {
			hints = []string{"enter: search", "esc: done typing"}
		} else {
			hints = []string{"/: search", "tab: pane", "w: to-watch", "m: watched", "d: remove", "h: hide watched", "g: genres", "f: feedback", "a: about", "q: quit"}
		}
	case ScreenGenre:
		hints = []string{"g: genres", "w: to-watch", "m: watched", "h: hide watched", "esc: back", "q: quit"}
	case ScreenAbout:
		hints = []string{"esc: back", "f: feedback", "q: quit"}
	case ScreenFeedback:
		hints = []string{"tab: next field", "enter: send", "esc: back"}
	}
	return styleHelp.Render(strings.Join(hints, "  ·  "))
}
