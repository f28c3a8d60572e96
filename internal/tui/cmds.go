package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/cinemood/internal/catalog"
	"github.com/papapumpkin/cinemood/internal/shelf"
	"github.com/papapumpkin/cinemood/internal/telemetry"
)

// Commands run off the update loop and report back as messages. The HTTP
// client carries the configured timeout, so none of these can hang forever.

func (m AppModel) genresCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return MsgGenres{Genres: client.TopGenres(context.Background())}
	}
}

func (m AppModel) searchCmd(seq int, query string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		results, err := client.Search(context.Background(), query)
		if err != nil {
			return MsgSearchFailed{Seq: seq, Err: err}
		}
		return MsgSearchDone{Seq: seq, Query: query, Results: results}
	}
}

func (m AppModel) browseCmd(seq int, genre catalog.Genre) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		results, err := client.MoviesByGenre(context.Background(), genre)
		if err != nil {
			return MsgBrowseFailed{Seq: seq, Genre: genre, Err: err}
		}
		return MsgBrowseDone{Seq: seq, Genre: genre, Results: results}
	}
}

func (m AppModel) feedbackCmd(fb catalog.Feedback) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return MsgFeedbackDone{Err: client.SubmitFeedback(context.Background(), fb)}
	}
}

// saveCmd persists one list, snapshotting its entries now so a later
// mutation cannot race the write. Mutations replace list slices rather than
// editing them in place, so the snapshot is just the slice header.
func (m AppModel) saveCmd(list shelf.List) tea.Cmd {
	store := m.store
	entries := m.shelf.Entries(list)
	return func() tea.Msg {
		return MsgListSaved{List: list, Err: store.Save(context.Background(), list, entries)}
	}
}

// watchCmd blocks on the store watcher's change channel. The model re-issues
// it after each MsgStoreChanged to keep listening.
func (m AppModel) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return MsgStoreChanged{}
	}
}

func (m AppModel) reloadCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return MsgShelfReloaded{Shelf: store.LoadShelf(context.Background())}
	}
}

// logEvent emits a telemetry event, dropping the write error — the event log
// is never allowed to disturb the session.
func (m AppModel) logEvent(evt telemetry.Event) {
	_ = m.emit.Emit(evt)
}
