package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/cinemood/internal/catalog"
	"github.com/papapumpkin/cinemood/internal/config"
	"github.com/papapumpkin/cinemood/internal/shelf"
	"github.com/papapumpkin/cinemood/internal/telemetry"
	"github.com/papapumpkin/cinemood/internal/view"
)

// Screen identifies which of the four mutually exclusive screens is active.
// Screen state lives only in the model; it is not persisted across runs.
type Screen int

const (
	ScreenSearch Screen = iota
	ScreenGenre
	ScreenAbout
	ScreenFeedback
)

// Label returns the status-bar label for a screen.
func (s Screen) Label() string {
	switch s {
	case ScreenSearch:
		return "search"
	case ScreenGenre:
		return "genre"
	case ScreenAbout:
		return "about"
	case ScreenFeedback:
		return "feedback"
	}
	return "unknown"
}

// Pane identifies which pane of the search screen has keyboard focus.
type Pane int

const (
	PaneResults Pane = iota
	PaneToWatch
	PaneWatched
)

// Next cycles panes: results → to-watch → watched → results.
func (p Pane) Next() Pane {
	switch p {
	case PaneResults:
		return PaneToWatch
	case PaneToWatch:
		return PaneWatched
	default:
		return PaneResults
	}
}

// Deps carries everything the model needs from the outside. The shelf is
// loaded from the store before the program starts so the first render
// already shows the restored lists.
type Deps struct {
	Cfg     config.Config
	Client  *catalog.Client
	Store   *shelf.Store
	Watcher *shelf.Watcher
	Emitter *telemetry.Emitter
	Shelf   shelf.Shelf
}

// AppModel is the root Bubble Tea model. All mutable application state lives
// here and changes only inside Update; every view is a pure render of it.
type AppModel struct {
	cfg     config.Config
	client  *catalog.Client
	store   *shelf.Store
	watcher *shelf.Watcher
	emit    *telemetry.Emitter

	keys   KeyMap
	screen Screen
	width  int
	height int
	spin   spinner.Model

	shelf       shelf.Shelf
	hideWatched bool
	pane        Pane

	// Search screen. The raw result set is replaced wholesale by each
	// query and never mutated in place. searchSeq is the staleness guard:
	// a response carrying an older sequence is dropped.
	input         textinput.Model
	typing        bool
	lastQuery     string
	searchRaw     []catalog.RankedResult
	searchWindow  int
	searchCursor  int
	searchSeq     int
	searchErr     string
	loadingSearch bool

	// Genre screen.
	genres        []catalog.Genre
	menuOpen      bool
	menuCursor    int
	genre         catalog.Genre
	genreRaw      []catalog.RankedResult
	genreWindow   int
	genreCursor   int
	browseSeq     int
	genreErr      string
	loadingBrowse bool

	// Shelf pane cursors.
	toWatchCursor int
	watchedCursor int

	// pendingSaves counts this session's in-flight store writes. A store
	// change event that arrives while it is non-zero is our own save
	// echoing back through the watcher; reloading then could momentarily
	// drop a newer mutation whose save has not committed yet.
	pendingSaves int

	// Feedback screen. The draft is transient and never persisted.
	message    textinput.Model
	email      textinput.Model
	focusEmail bool
	sending    bool
	note       string
	noteErr    bool
}

// NewAppModel creates the root model.
func NewAppModel(deps Deps) AppModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleLoading

	input := textinput.New()
	input.Placeholder = "funny and light, slow-burn thriller, ..."
	input.Prompt = "mood> "
	input.CharLimit = 200
	input.Focus()

	message := textinput.New()
	message.Placeholder = "What should we improve?"
	message.Prompt = "> "
	message.CharLimit = 500

	email := textinput.New()
	email.Placeholder = "you@example.com (optional)"
	email.Prompt = "> "
	email.CharLimit = 120

	pageSize := deps.Cfg.PageSize
	if pageSize <= 0 {
		pageSize = view.DefaultPageSize
	}

	return AppModel{
		cfg:          deps.Cfg,
		client:       deps.Client,
		store:        deps.Store,
		watcher:      deps.Watcher,
		emit:         deps.Emitter,
		keys:         DefaultKeyMap(),
		screen:       ScreenSearch,
		spin:         sp,
		shelf:        deps.Shelf,
		hideWatched:  deps.Cfg.HideWatched,
		input:        input,
		typing:       true,
		searchWindow: pageSize,
		genreWindow:  pageSize,
		message:      message,
		email:        email,
	}
}

// Init loads the genre menu, starts the spinner, and begins listening for
// external store changes.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spin.Tick,
		textinput.Blink,
		m.genresCmd(),
	}
	if cmd := m.watchCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// pageSize returns the configured visible-window increment.
func (m AppModel) pageSize() int {
	if m.cfg.PageSize > 0 {
		return m.cfg.PageSize
	}
	return view.DefaultPageSize
}

// searchProjection derives the search screen's visible window.
func (m AppModel) searchProjection() view.Projection {
	return view.Project(m.searchRaw, m.shelf.WatchedIDs(), m.hideWatched, m.searchWindow)
}

// genreProjection derives the genre screen's visible window.
func (m AppModel) genreProjection() view.Projection {
	return view.Project(m.genreRaw, m.shelf.WatchedIDs(), m.hideWatched, m.genreWindow)
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case MsgGenres:
		m.genres = msg.Genres
		if m.menuCursor >= len(m.genres) {
			m.menuCursor = 0
		}
		m.logEvent(telemetry.Event{Kind: telemetry.KindGenresLoaded, Data: len(msg.Genres)})
		return m, nil

	case MsgSearchDone:
		if msg.Seq != m.searchSeq {
			return m, nil // stale response from a superseded query
		}
		m.loadingSearch = false
		m.searchRaw = msg.Results
		m.searchErr = ""
		m.searchCursor = 0
		m.logEvent(telemetry.Event{Kind: telemetry.KindQueryDone, Query: msg.Query, Data: len(msg.Results)})
		return m, nil

	case MsgSearchFailed:
		if msg.Seq != m.searchSeq {
			return m, nil
		}
		m.loadingSearch = false
		m.searchRaw = nil
		m.searchErr = "Search failed: " + msg.Err.Error()
		m.logEvent(telemetry.Event{Kind: telemetry.KindQueryFailed, Query: m.lastQuery, Data: msg.Err.Error()})
		return m, nil

	case MsgBrowseDone:
		if msg.Seq != m.browseSeq {
			return m, nil
		}
		m.loadingBrowse = false
		m.genreRaw = msg.Results
		m.genreErr = ""
		m.genreCursor = 0
		m.logEvent(telemetry.Event{Kind: telemetry.KindQueryDone, Query: string(msg.Genre), Data: len(msg.Results)})
		return m, nil

	case MsgBrowseFailed:
		if msg.Seq != m.browseSeq {
			return m, nil
		}
		m.loadingBrowse = false
		m.genreRaw = nil
		m.genreErr = "Could not load " + string(msg.Genre) + " movies: " + msg.Err.Error()
		m.logEvent(telemetry.Event{Kind: telemetry.KindQueryFailed, Query: string(msg.Genre), Data: msg.Err.Error()})
		return m, nil

	case MsgFeedbackDone:
		m.sending = false
		if msg.Err != nil {
			m.note = msg.Err.Error()
			m.noteErr = true
			return m, nil
		}
		// Clear the draft and acknowledge. Under the optimistic policy
		// this branch also covers masked transport failures.
		m.message.SetValue("")
		m.email.SetValue("")
		m.note = "Thanks for your feedback!"
		m.noteErr = false
		m.logEvent(telemetry.Event{Kind: telemetry.KindFeedbackSent})
		return m, nil

	case MsgListSaved:
		if m.pendingSaves > 0 {
			m.pendingSaves--
		}
		if msg.Err != nil {
			// Persistence is best-effort; the session keeps working.
			m.logEvent(telemetry.Event{Kind: telemetry.KindStoreError, List: string(msg.List), Data: msg.Err.Error()})
		}
		return m, nil

	case MsgStoreChanged:
		if m.pendingSaves > 0 {
			// Our own write; the in-memory shelf is already ahead of
			// the store. Keep listening, skip the reload.
			return m, m.watchCmd()
		}
		return m, tea.Batch(m.reloadCmd(), m.watchCmd())

	case MsgShelfReloaded:
		m.shelf = msg.Shelf
		m.clampCursors()
		return m, nil
	}

	return m, nil
}

// clampCursors keeps every cursor inside its current slice after the
// underlying data shrank.
func (m *AppModel) clampCursors() {
	clamp := func(cursor, length int) int {
		if length == 0 {
			return 0
		}
		if cursor >= length {
			return length - 1
		}
		if cursor < 0 {
			return 0
		}
		return cursor
	}
	m.searchCursor = clamp(m.searchCursor, len(m.searchProjection().Visible))
	m.genreCursor = clamp(m.genreCursor, len(m.genreProjection().Visible))
	m.toWatchCursor = clamp(m.toWatchCursor, len(m.shelf.ToWatch))
	m.watchedCursor = clamp(m.watchedCursor, len(m.shelf.Watched))
	m.menuCursor = clamp(m.menuCursor, len(m.genres))
}

// View renders the active screen under the status bar.
func (m AppModel) View() string {
	var body string
	switch m.screen {
	case ScreenSearch:
		body = m.viewSearch()
	case ScreenGenre:
		body = m.viewGenre()
	case ScreenAbout:
		body = m.viewAbout()
	case ScreenFeedback:
		body = m.viewFeedback()
	}
	return m.viewStatusBar() + "\n" + body + "\n" + m.viewHelp()
}
