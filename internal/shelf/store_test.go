package shelf

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "lists.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	entries := []Entry{{MovieID: 2, Title: "Arrival"}, {MovieID: 1, Title: "Alien"}}
	if err := store.Save(ctx, ListToWatch, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if diff := cmp.Diff(entries, store.Load(ctx, ListToWatch)); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
	// The other key is independent.
	if got := store.Load(ctx, ListWatched); len(got) != 0 {
		t.Errorf("Load(watched) = %v, want empty", got)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, ListWatched, []Entry{{MovieID: 1, Title: "Alien"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := []Entry{{MovieID: 2, Title: "Arrival"}}
	if err := store.Save(ctx, ListWatched, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if diff := cmp.Diff(want, store.Load(ctx, ListWatched)); diff != "" {
		t.Errorf("Load after overwrite mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_LoadMissingKeyIsEmpty(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)

	if got := store.Load(context.Background(), ListToWatch); len(got) != 0 {
		t.Errorf("Load on fresh store = %v, want empty", got)
	}
}

func TestStore_LoadCorruptPayloadIsEmpty(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		`INSERT INTO lists (key, payload) VALUES (?, ?)`, string(ListToWatch), `{not json!`)
	if err != nil {
		t.Fatalf("seeding corrupt payload: %v", err)
	}

	if got := store.Load(ctx, ListToWatch); got != nil {
		t.Errorf("Load of corrupt payload = %v, want nil", got)
	}
}

func TestStore_NilStoreIsNoOp(t *testing.T) {
	t.Parallel()
	var store *Store
	ctx := context.Background()

	if got := store.Load(ctx, ListToWatch); got != nil {
		t.Errorf("nil store Load = %v, want nil", got)
	}
	if err := store.Save(ctx, ListToWatch, []Entry{{MovieID: 1}}); err != nil {
		t.Errorf("nil store Save = %v, want nil", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("nil store Close = %v, want nil", err)
	}
	if got := store.Path(); got != "" {
		t.Errorf("nil store Path = %q, want empty", got)
	}
}

func TestStore_LoadShelf(t *testing.T) {
	t.Parallel()
	store := openTestStore(t)
	ctx := context.Background()

	toWatch := []Entry{{MovieID: 1, Title: "Alien"}}
	watched := []Entry{{MovieID: 2, Title: "Arrival"}}
	if err := store.Save(ctx, ListToWatch, toWatch); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(ctx, ListWatched, watched); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s := store.LoadShelf(ctx)
	if diff := cmp.Diff(Shelf{ToWatch: toWatch, Watched: watched}, s); diff != "" {
		t.Errorf("LoadShelf mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lists.db")

	store, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	entries := []Entry{{MovieID: 1, Title: "Alien"}}
	if err := store.Save(ctx, ListToWatch, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if diff := cmp.Diff(entries, reopened.Load(ctx, ListToWatch)); diff != "" {
		t.Errorf("Load after reopen mismatch (-want +got):\n%s", diff)
	}
}
