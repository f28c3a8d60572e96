package tui

import "strings"

// viewGenre renders the genre-browse screen for the selected tag.
func (m AppModel) viewGenre() string {
	if m.menuOpen {
		return m.renderGenreMenu()
	}

	var b strings.Builder
	b.WriteString("\n" + styleTitle.Render("Top "+string(m.genre)+" movies") + "\n\n")

	switch {
	case m.loadingBrowse:
		b.WriteString("  " + m.spin.View() + styleLoading.Render(" loading...") + "\n")
	case m.genreErr != "":
		b.WriteString("  " + styleError.Render(m.genreErr) + "\n")
	default:
		b.WriteString(m.renderResults(m.genreProjection(), m.genreCursor, true))
	}

	return b.String()
}
