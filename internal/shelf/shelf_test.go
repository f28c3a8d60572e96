package shelf

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/cinemood/internal/catalog"
)

func ref(id int64, title string) catalog.MovieRef {
	return catalog.MovieRef{MovieID: id, Title: title}
}

func TestAddToWatch_PrependsNewestFirst(t *testing.T) {
	t.Parallel()
	var s Shelf

	if !s.AddToWatch(ref(1, "Alien")) {
		t.Fatal("AddToWatch(1) = false, want true")
	}
	if !s.AddToWatch(ref(2, "Arrival")) {
		t.Fatal("AddToWatch(2) = false, want true")
	}

	want := []Entry{{MovieID: 2, Title: "Arrival"}, {MovieID: 1, Title: "Alien"}}
	if diff := cmp.Diff(want, s.ToWatch); diff != "" {
		t.Errorf("ToWatch mismatch (-want +got):\n%s", diff)
	}
}

func TestAddToWatch_DuplicateIsNoOp(t *testing.T) {
	t.Parallel()
	var s Shelf

	s.AddToWatch(ref(1, "Alien"))
	if s.AddToWatch(ref(1, "Alien")) {
		t.Error("duplicate AddToWatch = true, want false")
	}
	if len(s.ToWatch) != 1 {
		t.Errorf("len(ToWatch) = %d, want 1", len(s.ToWatch))
	}
}

func TestAddToWatch_DoesNotConsultWatched(t *testing.T) {
	t.Parallel()
	var s Shelf

	s.MarkWatched(ref(1, "Alien"))
	// Callers gate this; the operation itself allows it.
	if !s.AddToWatch(ref(1, "Alien")) {
		t.Error("AddToWatch of a watched movie = false, want true")
	}
}

func TestMarkWatched_RemovesFromToWatch(t *testing.T) {
	t.Parallel()
	var s Shelf

	s.AddToWatch(ref(1, "Alien"))
	s.AddToWatch(ref(2, "Arrival"))

	watchedChanged, toWatchChanged := s.MarkWatched(ref(1, "Alien"))
	if !watchedChanged || !toWatchChanged {
		t.Fatalf("MarkWatched = (%v, %v), want (true, true)", watchedChanged, toWatchChanged)
	}

	if s.ToWatchIDs()[1] {
		t.Error("movie 1 still on to-watch after MarkWatched")
	}
	if !s.WatchedIDs()[1] {
		t.Error("movie 1 not on watched after MarkWatched")
	}
	if !s.ToWatchIDs()[2] {
		t.Error("movie 2 should be untouched")
	}
}

func TestMarkWatched_Idempotent(t *testing.T) {
	t.Parallel()
	var s Shelf

	s.MarkWatched(ref(1, "Alien"))
	before := append([]Entry(nil), s.Watched...)

	watchedChanged, toWatchChanged := s.MarkWatched(ref(1, "Alien"))
	if watchedChanged || toWatchChanged {
		t.Errorf("second MarkWatched = (%v, %v), want (false, false)", watchedChanged, toWatchChanged)
	}
	if diff := cmp.Diff(before, s.Watched); diff != "" {
		t.Errorf("Watched changed on repeated MarkWatched (-want +got):\n%s", diff)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		list    List
		movieID int64
		want    bool
	}{
		{"present on towatch", ListToWatch, 1, true},
		{"present on watched", ListWatched, 2, true},
		{"absent", ListToWatch, 99, false},
		{"wrong list", ListWatched, 1, false},
		{"unknown list", List("favorites"), 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var s Shelf
			s.AddToWatch(ref(1, "Alien"))
			s.MarkWatched(ref(2, "Arrival"))

			if got := s.Remove(tt.list, tt.movieID); got != tt.want {
				t.Errorf("Remove(%q, %d) = %v, want %v", tt.list, tt.movieID, got, tt.want)
			}
		})
	}
}

// TestInvariants_OperationSequence replays a mixed op sequence and checks
// both invariants after every step: no duplicate ids within a list, and no
// id on both lists at once.
func TestInvariants_OperationSequence(t *testing.T) {
	t.Parallel()
	var s Shelf

	ops := []func(){
		func() { s.AddToWatch(ref(1, "Alien")) },
		func() { s.AddToWatch(ref(2, "Arrival")) },
		func() { s.AddToWatch(ref(1, "Alien")) },
		func() { s.MarkWatched(ref(1, "Alien")) },
		func() { s.MarkWatched(ref(3, "Amelie")) },
		func() { s.AddToWatch(ref(4, "Brazil")) },
		func() { s.MarkWatched(ref(1, "Alien")) },
		func() { s.Remove(ListWatched, 3) },
		func() { s.MarkWatched(ref(4, "Brazil")) },
		func() { s.Remove(ListToWatch, 2) },
		func() { s.AddToWatch(ref(3, "Amelie")) },
	}

	for i, op := range ops {
		op()
		assertListInvariants(t, i, &s)
	}
}

func assertListInvariants(t *testing.T, step int, s *Shelf) {
	t.Helper()
	for _, list := range []List{ListToWatch, ListWatched} {
		seen := make(map[int64]bool)
		for _, e := range s.Entries(list) {
			if seen[e.MovieID] {
				t.Fatalf("step %d: duplicate id %d on %s", step, e.MovieID, list)
			}
			seen[e.MovieID] = true
		}
	}
	toWatch := s.ToWatchIDs()
	for id := range s.WatchedIDs() {
		if toWatch[id] {
			t.Fatalf("step %d: id %d on both lists", step, id)
		}
	}
}

func TestMembershipLookups_DerivedFromContents(t *testing.T) {
	t.Parallel()
	var s Shelf
	s.AddToWatch(ref(1, "Alien"))
	s.MarkWatched(ref(2, "Arrival"))

	if diff := cmp.Diff(map[int64]bool{1: true}, s.ToWatchIDs()); diff != "" {
		t.Errorf("ToWatchIDs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[int64]bool{2: true}, s.WatchedIDs()); diff != "" {
		t.Errorf("WatchedIDs mismatch (-want +got):\n%s", diff)
	}

	// Lookups track the lists, not a cached copy.
	s.Remove(ListToWatch, 1)
	if len(s.ToWatchIDs()) != 0 {
		t.Error("ToWatchIDs not empty after removal")
	}
}
