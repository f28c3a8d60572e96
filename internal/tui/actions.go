package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/cinemood/internal/catalog"
	"github.com/papapumpkin/cinemood/internal/shelf"
	"github.com/papapumpkin/cinemood/internal/telemetry"
	"github.com/papapumpkin/cinemood/internal/view"
)

// handleKey routes key presses. Text-entry focus wins: while an input is
// focused, printable keys belong to it and only enter/esc/tab act as
// controls.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenSearch:
		return m.handleSearchKey(msg)
	case ScreenGenre:
		return m.handleGenreKey(msg)
	case ScreenAbout:
		return m.handleAboutKey(msg)
	case ScreenFeedback:
		return m.handleFeedbackKey(msg)
	}
	return m, nil
}

func (m AppModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menuOpen {
		return m.handleMenuKey(msg)
	}

	if m.typing {
		switch msg.Type {
		case tea.KeyEnter:
			return m.submitSearch()
		case tea.KeyEscape:
			m.typing = false
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.typing = true
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.NextPane):
		m.pane = m.pane.Next()
		return m, nil
	case key.Matches(msg, m.keys.Genres):
		m.menuOpen = true
		return m, nil
	case key.Matches(msg, m.keys.Feedback):
		return m.gotoScreen(ScreenFeedback)
	case key.Matches(msg, m.keys.About):
		return m.gotoScreen(ScreenAbout)
	case key.Matches(msg, m.keys.HideWatched):
		return m.toggleHideWatched()
	case key.Matches(msg, m.keys.ShowMore):
		if m.searchProjection().CanShowMore {
			m.searchWindow = view.NextWindow(m.searchWindow, m.pageSize())
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.AddToWatch):
		return m.addSelectedToWatch()
	case key.Matches(msg, m.keys.MarkWatched):
		return m.markSelectedWatched()
	case key.Matches(msg, m.keys.Remove):
		return m.removeSelected()
	case key.Matches(msg, m.keys.Back):
		return m, tea.Quit
	}
	return m, nil
}

func (m AppModel) handleGenreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menuOpen {
		return m.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.gotoScreen(ScreenSearch)
	case key.Matches(msg, m.keys.Genres):
		m.menuOpen = true
		return m, nil
	case key.Matches(msg, m.keys.Feedback):
		return m.gotoScreen(ScreenFeedback)
	case key.Matches(msg, m.keys.About):
		return m.gotoScreen(ScreenAbout)
	case key.Matches(msg, m.keys.HideWatched):
		return m.toggleHideWatched()
	case key.Matches(msg, m.keys.ShowMore):
		if m.genreProjection().CanShowMore {
			m.genreWindow = view.NextWindow(m.genreWindow, m.pageSize())
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.genreCursor = clampTo(m.genreCursor-1, len(m.genreProjection().Visible))
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.genreCursor = clampTo(m.genreCursor+1, len(m.genreProjection().Visible))
		return m, nil
	case key.Matches(msg, m.keys.AddToWatch):
		return m.addSelectedToWatch()
	case key.Matches(msg, m.keys.MarkWatched):
		return m.markSelectedWatched()
	}
	return m, nil
}

// handleMenuKey drives the genre picker overlay. Picking a tag is the one
// transition with side effects: it sets the genre, closes the menu, and
// issues the browse query.
func (m AppModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.menuOpen = false
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = clampTo(m.menuCursor-1, len(m.genres))
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = clampTo(m.menuCursor+1, len(m.genres))
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if len(m.genres) == 0 {
			m.menuOpen = false
			return m, nil
		}
		return m.pickGenre(m.genres[m.menuCursor])
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m AppModel) handleAboutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.gotoScreen(ScreenSearch)
	case key.Matches(msg, m.keys.Feedback):
		return m.gotoScreen(ScreenFeedback)
	}
	return m, nil
}

func (m AppModel) handleFeedbackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		return m.gotoScreen(ScreenSearch)
	case tea.KeyTab, tea.KeyShiftTab:
		m.focusEmail = !m.focusEmail
		if m.focusEmail {
			m.message.Blur()
			return m, m.email.Focus()
		}
		m.email.Blur()
		return m, m.message.Focus()
	case tea.KeyEnter:
		return m.submitFeedback()
	}

	var cmd tea.Cmd
	if m.focusEmail {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

// gotoScreen performs a plain navigation with no side effects beyond input
// focus bookkeeping.
func (m AppModel) gotoScreen(s Screen) (tea.Model, tea.Cmd) {
	m.screen = s
	m.menuOpen = false
	m.logEvent(telemetry.Event{Kind: telemetry.KindScreenChanged, Data: s.Label()})

	var cmd tea.Cmd
	switch s {
	case ScreenSearch:
		m.typing = false
		m.input.Blur()
	case ScreenFeedback:
		m.focusEmail = false
		m.email.Blur()
		cmd = m.message.Focus()
	}
	return m, cmd
}

// submitSearch issues a new search. A blank query clears the results without
// touching the network. The window cursor resets to one page on every query.
func (m AppModel) submitSearch() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	m.searchErr = ""
	m.searchWindow = m.pageSize()
	m.searchCursor = 0
	m.typing = false
	m.input.Blur()

	if query == "" {
		m.searchRaw = nil
		m.lastQuery = ""
		// Invalidate any in-flight search so a late response cannot
		// repopulate the cleared results or strand the loading flag.
		m.searchSeq++
		m.loadingSearch = false
		return m, nil
	}

	m.lastQuery = query
	m.searchSeq++
	m.loadingSearch = true
	m.logEvent(telemetry.Event{Kind: telemetry.KindQueryIssued, Query: query})
	return m, m.searchCmd(m.searchSeq, query)
}

// pickGenre transitions to the genre screen and issues the browse query.
func (m AppModel) pickGenre(g catalog.Genre) (tea.Model, tea.Cmd) {
	m.screen = ScreenGenre
	m.genre = g
	m.menuOpen = false
	m.genreErr = ""
	m.genreRaw = nil
	m.genreWindow = m.pageSize()
	m.genreCursor = 0
	m.browseSeq++
	m.loadingBrowse = true
	m.logEvent(telemetry.Event{Kind: telemetry.KindQueryIssued, Query: string(g)})
	return m, m.browseCmd(m.browseSeq, g)
}

// submitFeedback validates the draft locally and, if non-empty, sends it.
func (m AppModel) submitFeedback() (tea.Model, tea.Cmd) {
	if m.sending {
		return m, nil
	}
	text := strings.TrimSpace(m.message.Value())
	if text == "" {
		m.note = "Please write a message before sending."
		m.noteErr = true
		return m, nil
	}

	fb := catalog.Feedback{Message: text}
	if email := strings.TrimSpace(m.email.Value()); email != "" {
		fb.Email = &email
	}
	m.sending = true
	m.note = ""
	m.noteErr = false
	return m, m.feedbackCmd(fb)
}

// toggleHideWatched flips the filter. The projection recomputes from the
// same raw result set; no query is reissued.
func (m AppModel) toggleHideWatched() (tea.Model, tea.Cmd) {
	m.hideWatched = !m.hideWatched
	m.searchCursor = 0
	m.genreCursor = 0
	return m, nil
}

// moveCursor moves the focused pane's cursor on the search screen.
func (m *AppModel) moveCursor(delta int) {
	switch m.pane {
	case PaneResults:
		m.searchCursor = clampTo(m.searchCursor+delta, len(m.searchProjection().Visible))
	case PaneToWatch:
		m.toWatchCursor = clampTo(m.toWatchCursor+delta, len(m.shelf.ToWatch))
	case PaneWatched:
		m.watchedCursor = clampTo(m.watchedCursor+delta, len(m.shelf.Watched))
	}
}

// selectedRef returns the movie the current cursor points at, in whichever
// pane or screen is active.
func (m AppModel) selectedRef() (catalog.MovieRef, bool) {
	if m.screen == ScreenGenre {
		visible := m.genreProjection().Visible
		if len(visible) == 0 {
			return catalog.MovieRef{}, false
		}
		return visible[clampTo(m.genreCursor, len(visible))].Ref(), true
	}

	switch m.pane {
	case PaneResults:
		visible := m.searchProjection().Visible
		if len(visible) == 0 {
			return catalog.MovieRef{}, false
		}
		return visible[clampTo(m.searchCursor, len(visible))].Ref(), true
	case PaneToWatch:
		if len(m.shelf.ToWatch) == 0 {
			return catalog.MovieRef{}, false
		}
		e := m.shelf.ToWatch[clampTo(m.toWatchCursor, len(m.shelf.ToWatch))]
		return catalog.MovieRef{MovieID: e.MovieID, Title: e.Title}, true
	case PaneWatched:
		if len(m.shelf.Watched) == 0 {
			return catalog.MovieRef{}, false
		}
		e := m.shelf.Watched[clampTo(m.watchedCursor, len(m.shelf.Watched))]
		return catalog.MovieRef{MovieID: e.MovieID, Title: e.Title}, true
	}
	return catalog.MovieRef{}, false
}

// addSelectedToWatch adds the selected movie to the to-watch list. The
// action is disabled for already-watched movies — AddToWatch itself does not
// consult the watched set, so the gate lives here.
func (m AppModel) addSelectedToWatch() (tea.Model, tea.Cmd) {
	ref, ok := m.selectedRef()
	if !ok || m.shelf.WatchedIDs()[ref.MovieID] {
		return m, nil
	}
	if !m.shelf.AddToWatch(ref) {
		return m, nil
	}
	m.logEvent(telemetry.Event{Kind: telemetry.KindListMutation, List: string(shelf.ListToWatch), Data: ref.MovieID})
	m.pendingSaves++
	return m, m.saveCmd(shelf.ListToWatch)
}

// markSelectedWatched marks the selected movie watched, saving every list
// the mutation touched.
func (m AppModel) markSelectedWatched() (tea.Model, tea.Cmd) {
	ref, ok := m.selectedRef()
	if !ok {
		return m, nil
	}
	watchedChanged, toWatchChanged := m.shelf.MarkWatched(ref)
	if !watchedChanged {
		return m, nil
	}
	m.clampCursors()
	m.logEvent(telemetry.Event{Kind: telemetry.KindListMutation, List: string(shelf.ListWatched), Data: ref.MovieID})

	cmds := []tea.Cmd{m.saveCmd(shelf.ListWatched)}
	if toWatchChanged {
		cmds = append(cmds, m.saveCmd(shelf.ListToWatch))
	}
	m.pendingSaves += len(cmds)
	return m, tea.Batch(cmds...)
}

// removeSelected removes the selected entry from the focused list pane.
// It does nothing when the results pane is focused.
func (m AppModel) removeSelected() (tea.Model, tea.Cmd) {
	var list shelf.List
	switch m.pane {
	case PaneToWatch:
		list = shelf.ListToWatch
	case PaneWatched:
		list = shelf.ListWatched
	default:
		return m, nil
	}
	ref, ok := m.selectedRef()
	if !ok || !m.shelf.Remove(list, ref.MovieID) {
		return m, nil
	}
	m.clampCursors()
	m.logEvent(telemetry.Event{Kind: telemetry.KindListMutation, List: string(list), Data: ref.MovieID})
	m.pendingSaves++
	return m, m.saveCmd(list)
}

// clampTo keeps a cursor inside [0, length).
func clampTo(cursor, length int) int {
	if length <= 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}
