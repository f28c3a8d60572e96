// Package shelf maintains the user's two movie lists — to-watch and watched —
// along with their SQLite persistence. Membership lookups are always derived
// from list contents, never maintained incrementally, so they cannot drift.
package shelf

import "github.com/papapumpkin/cinemood/internal/catalog"

// Entry is a minimal movie reference stored in a user list.
type Entry struct {
	MovieID int64  `json:"movieId" toml:"movie_id"`
	Title   string `json:"title" toml:"title"`
}

// List names one of the two persisted lists. The values double as storage
// keys.
type List string

const (
	ListToWatch List = "towatch"
	ListWatched List = "watched"
)

// Shelf holds both lists, newest addition first. The zero value is ready to
// use. Mutations go through the methods below, which keep two invariants:
// a movieId appears at most once per list, and a watched movie is never on
// the to-watch list.
type Shelf struct {
	ToWatch []Entry
	Watched []Entry
}

// ToWatchIDs returns the membership lookup for the to-watch list, recomputed
// from the current contents.
func (s *Shelf) ToWatchIDs() map[int64]bool {
	return idSet(s.ToWatch)
}

// WatchedIDs returns the membership lookup for the watched list, recomputed
// from the current contents.
func (s *Shelf) WatchedIDs() map[int64]bool {
	return idSet(s.Watched)
}

func idSet(entries []Entry) map[int64]bool {
	ids := make(map[int64]bool, len(entries))
	for _, e := range entries {
		ids[e.MovieID] = true
	}
	return ids
}

// AddToWatch prepends ref to the to-watch list and reports whether the list
// changed. It is a no-op on a duplicate movieId. It deliberately does not
// consult the watched list; callers gate that (the TUI disables the action
// for watched rows).
func (s *Shelf) AddToWatch(ref catalog.MovieRef) bool {
	if s.ToWatchIDs()[ref.MovieID] {
		return false
	}
	s.ToWatch = prepend(s.ToWatch, Entry{MovieID: ref.MovieID, Title: ref.Title})
	return true
}

// MarkWatched prepends ref to the watched list and removes the same movieId
// from the to-watch list if present. This is the one place the
// watched-excludes-towatch invariant is enforced. It reports which lists
// changed; both false means the movie was already watched.
func (s *Shelf) MarkWatched(ref catalog.MovieRef) (watchedChanged, toWatchChanged bool) {
	if s.WatchedIDs()[ref.MovieID] {
		return false, false
	}
	s.Watched = prepend(s.Watched, Entry{MovieID: ref.MovieID, Title: ref.Title})
	s.ToWatch, toWatchChanged = removeID(s.ToWatch, ref.MovieID)
	return true, toWatchChanged
}

// Remove deletes the entry with the given movieId from the named list and
// reports whether anything was removed.
func (s *Shelf) Remove(list List, movieID int64) bool {
	switch list {
	case ListToWatch:
		var changed bool
		s.ToWatch, changed = removeID(s.ToWatch, movieID)
		return changed
	case ListWatched:
		var changed bool
		s.Watched, changed = removeID(s.Watched, movieID)
		return changed
	}
	return false
}

// Entries returns the current contents of the named list.
func (s *Shelf) Entries(list List) []Entry {
	switch list {
	case ListToWatch:
		return s.ToWatch
	case ListWatched:
		return s.Watched
	}
	return nil
}

func prepend(entries []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, e)
	return append(out, entries...)
}

func removeID(entries []Entry, movieID int64) ([]Entry, bool) {
	for i, e := range entries {
		if e.MovieID == movieID {
			out := make([]Entry, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			return append(out, entries[i+1:]...), true
		}
	}
	return entries, false
}
