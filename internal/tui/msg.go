package tui

import (
	"github.com/papapumpkin/cinemood/internal/catalog"
	"github.com/papapumpkin/cinemood/internal/shelf"
)

// Async completion messages. Query results carry the sequence number of the
// request that produced them; the model drops any message whose sequence is
// stale, so a slow response can never overwrite a newer query's state.

// MsgGenres delivers the top-genres menu. An empty slice means the fetch
// failed or the backend has no data; both render the same.
type MsgGenres struct {
	Genres []catalog.Genre
}

// MsgSearchDone delivers a search result set.
type MsgSearchDone struct {
	Seq     int
	Query   string
	Results []catalog.RankedResult
}

// MsgSearchFailed reports a search failure.
type MsgSearchFailed struct {
	Seq int
	Err error
}

// MsgBrowseDone delivers a genre-browse result set.
type MsgBrowseDone struct {
	Seq     int
	Genre   catalog.Genre
	Results []catalog.RankedResult
}

// MsgBrowseFailed reports a genre-browse failure.
type MsgBrowseFailed struct {
	Seq   int
	Genre catalog.Genre
	Err   error
}

// MsgFeedbackDone reports the outcome of a feedback submission. Under the
// optimistic ack policy Err is nil even when the backend was unreachable.
type MsgFeedbackDone struct {
	Err error
}

// MsgListSaved reports a best-effort store write. Errors are absorbed
// (logged, never shown); the in-memory lists keep working for the session.
type MsgListSaved struct {
	List shelf.List
	Err  error
}

// MsgStoreChanged signals that another process wrote the list database.
type MsgStoreChanged struct{}

// MsgShelfReloaded delivers freshly loaded lists after a store change.
type MsgShelfReloaded struct {
	Shelf shelf.Shelf
}
