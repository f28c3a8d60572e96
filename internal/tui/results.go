package tui

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/cinemood/internal/shelf"
	"github.com/papapumpkin/cinemood/internal/view"
)

// renderResults renders one query's visible window as rows of
// rank / title / rating, with membership markers and a selection indicator
// when the pane is focused.
func (m AppModel) renderResults(p view.Projection, cursor int, focused bool) string {
	if len(p.Visible) == 0 {
		return "  " + styleDim.Render("No results.") + "\n"
	}

	toWatch := m.shelf.ToWatchIDs()
	watched := m.shelf.WatchedIDs()

	var b strings.Builder
	for i, r := range p.Visible {
		selected := focused && i == clampTo(cursor, len(p.Visible))

		indicator := "  "
		if selected {
			indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
		}

		marker := " "
		markerStyle := styleRowNormal
		switch {
		case watched[r.MovieID]:
			marker = iconWatched
			markerStyle = styleRowWatched
		case toWatch[r.MovieID]:
			marker = iconToWatch
			markerStyle = styleRowToWatch
		}

		title := TruncateWithEllipsis(r.Title, m.titleWidth())
		rowStyle := styleRowNormal
		if selected {
			rowStyle = styleRowSelected
		}

		fmt.Fprintf(&b, "%s%s %s %s %s\n",
			indicator,
			styleRank.Render(fmt.Sprintf("%3d.", r.Rank)),
			markerStyle.Render(marker),
			rowStyle.Render(fmt.Sprintf("%-*s", m.titleWidth(), title)),
			styleRating.Render(string(r.Rating)),
		)
	}

	b.WriteString(m.renderWindowFooter(p))
	return b.String()
}

// renderWindowFooter shows the visible/total counts and the show-more
// affordance, which disappears exactly when the window covers everything.
func (m AppModel) renderWindowFooter(p view.Projection) string {
	line := fmt.Sprintf("  showing %d of %d", len(p.Visible), p.Total)
	if p.CanShowMore {
		line += "  ·  s: show more"
	}
	if m.hideWatched {
		line += "  ·  hiding watched"
	}
	return styleDim.Render(line) + "\n"
}

// renderShelfPanel renders the two user lists stacked, with the focused
// list's cursor visible.
func (m AppModel) renderShelfPanel() string {
	var b strings.Builder
	b.WriteString(m.renderList("To watch", m.shelf.ToWatch, m.toWatchCursor, m.pane == PaneToWatch))
	b.WriteString("\n")
	b.WriteString(m.renderList("Watched", m.shelf.Watched, m.watchedCursor, m.pane == PaneWatched))
	return b.String()
}

func (m AppModel) renderList(title string, entries []shelf.Entry, cursor int, focused bool) string {
	var b strings.Builder

	titleStyle := stylePaneTitle
	if focused {
		titleStyle = stylePaneTitleFocused
	}
	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(title), styleDim.Render(fmt.Sprintf("(%d)", len(entries))))

	if len(entries) == 0 {
		b.WriteString("  " + styleDim.Render("empty") + "\n")
		return b.String()
	}

	for i, e := range entries {
		indicator := "  "
		rowStyle := styleRowNormal
		if focused && i == clampTo(cursor, len(entries)) {
			indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
			rowStyle = styleRowSelected
		}
		fmt.Fprintf(&b, "%s%s\n", indicator, rowStyle.Render(TruncateWithEllipsis(e.Title, m.titleWidth())))
	}
	return b.String()
}

// renderGenreMenu renders the genre picker overlay.
func (m AppModel) renderGenreMenu() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Pick a genre") + "\n\n")

	if len(m.genres) == 0 {
		b.WriteString("  " + styleDim.Render("No genres available.") + "\n")
		b.WriteString("\n" + styleDim.Render("  esc: close") + "\n")
		return b.String()
	}

	for i, g := range m.genres {
		indicator := "  "
		rowStyle := styleRowNormal
		if i == clampTo(m.menuCursor, len(m.genres)) {
			indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
			rowStyle = styleRowSelected
		}
		fmt.Fprintf(&b, "%s%s\n", indicator, rowStyle.Render(string(g)))
	}
	b.WriteString("\n" + styleDim.Render("  enter: browse  ·  esc: close") + "\n")
	return b.String()
}

// titleWidth bounds movie titles so rows stay on one line.
func (m AppModel) titleWidth() int {
	w := 48
	if m.width > 0 && m.width < 100 {
		w = m.width / 2
		if w < 20 {
			w = 20
		}
	}
	return w
}

// TruncateWithEllipsis shortens s to at most max runes, appending an
// ellipsis when anything was cut.
func TruncateWithEllipsis(s string, max int) string {
	if max <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
