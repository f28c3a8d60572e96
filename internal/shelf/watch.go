package shelf

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the list database file for writes made by another
// process (a second TUI, or the headless lists commands) so a live session
// can reload its lists. The TUI works fine without one; this is strictly a
// freshness aid.
type Watcher struct {
	Changes <-chan struct{} // Read-only external channel

	dbPath  string
	changes chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the database at dbPath. The parent
// directory is watched, since SQLite rewrites the -wal sidecar rather than
// the main file on most commits.
func NewWatcher(dbPath string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan struct{}, 1)
	w := &Watcher{
		Changes: ch,
		dbPath:  dbPath,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching the database's directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.dbPath)); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and channels. Only valid after a successful
// Start; use Close for a watcher whose loop never launched.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

// Close releases the fsnotify handle without waiting for the loop. It is
// the cleanup path for a watcher that was created but never started, or
// whose Start failed.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: WAL commits arrive as bursts of events.
	const debounce = 200 * time.Millisecond
	var pending bool
	var last time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isDBFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = true
				last = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if pending && time.Since(last) >= debounce {
				pending = false
				w.notify()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the session just goes stale.
		}
	}
}

// isDBFile matches the database file and its SQLite sidecars.
func (w *Watcher) isDBFile(name string) bool {
	base := filepath.Base(w.dbPath)
	got := filepath.Base(name)
	return got == base || strings.TrimSuffix(strings.TrimSuffix(got, "-wal"), "-journal") == base
}

// notify delivers a change signal without blocking; a signal already in
// flight covers this change too.
func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
