package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"inkrypt/internal/domain"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDebounce = 20 * time.Millisecond
	testTTL      = 300 * time.Millisecond
	waitTimeout  = 3 * time.Second
	quietWindow  = 250 * time.Millisecond
)

type recorder struct {
	mu      sync.Mutex
	batches [][]domain.FileSystemEvent
	signal  chan struct{}
}

func newRecorder() *recorder {
	return &recorder{signal: make(chan struct{}, 64)}
}

func (r *recorder) handle(batch []domain.FileSystemEvent) {
	r.mu.Lock()
	r.batches = append(r.batches, batch)
	r.mu.Unlock()
	select {
	case r.signal <- struct{}{}:
	default:
	}
}

func (r *recorder) events() []domain.FileSystemEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []domain.FileSystemEvent
	for _, b := range r.batches {
		all = append(all, b...)
	}
	return all
}

func (r *recorder) find(path string) (domain.FileSystemEvent, bool) {
	for _, e := range r.events() {
		if e.Path == path {
			return e, true
		}
	}
	return domain.FileSystemEvent{}, false
}

// waitFor blocks until an event for path has been emitted or the deadline passes
func (r *recorder) waitFor(path string) (domain.FileSystemEvent, bool) {
	deadline := time.After(waitTimeout)
	for {
		if e, ok := r.find(path); ok {
			return e, true
		}
		select {
		case <-r.signal:
		case <-deadline:
			return domain.FileSystemEvent{}, false
		}
	}
}

func newTestWatcher(t *testing.T) (*Watcher, *recorder) {
	t.Helper()
	w := New(Options{Debounce: testDebounce, Pending: NewPendingSet(testTTL)})
	t.Cleanup(func() { w.Close() })

	rec := newRecorder()
	cancel := w.Subscribe(rec.handle)
	t.Cleanup(cancel)
	return w, rec
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcher_EmitsExternalChange(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := t.TempDir()
	id := uuid.New()
	require.NoError(t, w.Watch(id, root))

	writeFile(t, filepath.Join(root, "a.md"), "hello")

	event, ok := rec.waitFor("a.md")
	require.True(t, ok, "timed out waiting for a.md")
	assert.Equal(t, id, event.VaultID)
	assert.Contains(t, []domain.FileEventType{domain.FileEventCreate, domain.FileEventModify}, event.EventType)
}

func TestWatcher_BatchesAreDeduplicated(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := t.TempDir()
	require.NoError(t, w.Watch(uuid.New(), root))

	path := filepath.Join(root, "busy.md")
	for i := range 5 {
		writeFile(t, path, string(rune('a'+i)))
	}
	_, ok := rec.waitFor("busy.md")
	require.True(t, ok)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	for _, batch := range rec.batches {
		seen := map[string]bool{}
		for _, e := range batch {
			assert.False(t, seen[e.Path], "duplicate %s in one batch", e.Path)
			seen[e.Path] = true
		}
	}
}

func TestWatcher_SuppressesPendingWithinTTL(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := t.TempDir()
	require.NoError(t, w.Watch(uuid.New(), root))

	own := filepath.Join(root, "own.md")
	w.MarkPending(own)
	writeFile(t, own, "mine")

	// control change proves the pipeline is running
	writeFile(t, filepath.Join(root, "control.md"), "x")
	_, ok := rec.waitFor("control.md")
	require.True(t, ok)

	time.Sleep(quietWindow / 2)
	_, found := rec.find("own.md")
	assert.False(t, found, "self-generated change must be suppressed")
}

func TestWatcher_EmitsAfterTTLExpiry(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := t.TempDir()
	require.NoError(t, w.Watch(uuid.New(), root))

	path := filepath.Join(root, "later.md")
	w.MarkPending(path)
	time.Sleep(testTTL + 100*time.Millisecond)

	writeFile(t, path, "external")
	_, ok := rec.waitFor("later.md")
	assert.True(t, ok, "change after TTL expiry must be reported")
}

func TestWatcher_PendingDirectoryCoversDescendants(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := t.TempDir()
	dir := filepath.Join(root, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	writeFile(t, filepath.Join(dir, "sub", "leaf.md"), "x")
	require.NoError(t, w.Watch(uuid.New(), root))

	w.MarkPending(dir)
	require.NoError(t, os.RemoveAll(dir))

	writeFile(t, filepath.Join(root, "control.md"), "x")
	_, ok := rec.waitFor("control.md")
	require.True(t, ok)
	time.Sleep(quietWindow / 2)

	for _, e := range rec.events() {
		assert.Equal(t, "control.md", e.Path)
	}
}

func TestWatcher_SuppressesCreatedParents(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := t.TempDir()
	require.NoError(t, w.Watch(uuid.New(), root))

	note := filepath.Join(root, "new", "sub", "n.md")
	w.MarkPending(note)
	require.NoError(t, os.MkdirAll(filepath.Dir(note), 0o755))
	writeFile(t, note, "mine")

	writeFile(t, filepath.Join(root, "control.md"), "x")
	_, ok := rec.waitFor("control.md")
	require.True(t, ok)
	time.Sleep(quietWindow / 2)

	for _, e := range rec.events() {
		assert.Equal(t, "control.md", e.Path)
	}
}

func TestWatcher_IgnoresMetadataDirectory(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(domain.MetadataDir(root), 0o755))
	require.NoError(t, w.Watch(uuid.New(), root))

	writeFile(t, domain.MetadataPath(root), `{"id":"x"}`)
	writeFile(t, filepath.Join(root, "control.md"), "x")
	_, ok := rec.waitFor("control.md")
	require.True(t, ok)
	time.Sleep(quietWindow / 2)

	for _, e := range rec.events() {
		assert.False(t, domain.HasMetadataComponent(e.Path), "unexpected event %s", e.Path)
	}
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := t.TempDir()
	require.NoError(t, w.Watch(uuid.New(), root))

	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	_, ok := rec.waitFor("sub")
	require.True(t, ok)

	writeFile(t, filepath.Join(root, "sub", "nested.md"), "deep")
	_, ok = rec.waitFor("sub/nested.md")
	assert.True(t, ok, "changes inside a directory created after Watch must be seen")
}

func TestWatcher_ExistingSubdirectoriesAreWatched(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, w.Watch(uuid.New(), root))

	writeFile(t, filepath.Join(root, "a", "b", "c.md"), "x")
	_, ok := rec.waitFor("a/b/c.md")
	assert.True(t, ok)
}

func TestWatcher_RenameIsDeleteThenCreate(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "old.md"), "x")
	require.NoError(t, w.Watch(uuid.New(), root))

	require.NoError(t, os.Rename(filepath.Join(root, "old.md"), filepath.Join(root, "new.md")))

	oldEvent, ok := rec.waitFor("old.md")
	require.True(t, ok)
	assert.Equal(t, domain.FileEventDelete, oldEvent.EventType)

	newEvent, ok := rec.waitFor("new.md")
	require.True(t, ok)
	assert.Equal(t, domain.FileEventCreate, newEvent.EventType)

	for _, e := range rec.events() {
		assert.NotEqual(t, domain.FileEventRename, e.EventType)
	}
}

func TestWatcher_RootDeleteHasEmptyPath(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := filepath.Join(t.TempDir(), "vault")
	require.NoError(t, os.Mkdir(root, 0o755))
	id := uuid.New()
	require.NoError(t, w.Watch(id, root))

	require.NoError(t, os.Remove(root))

	event, ok := rec.waitFor("")
	require.True(t, ok, "removing the watched root must be reported")
	assert.Equal(t, domain.FileEventDelete, event.EventType)
	assert.Equal(t, id, event.VaultID)
}

func TestWatcher_SingleActiveWatch(t *testing.T) {
	w, rec := newTestWatcher(t)
	rootA, rootB := t.TempDir(), t.TempDir()
	idA, idB := uuid.New(), uuid.New()

	require.NoError(t, w.Watch(idA, rootA))
	require.NoError(t, w.Watch(idB, rootB))

	current, path, ok := w.Current()
	require.True(t, ok)
	assert.Equal(t, idB, current)
	assert.Equal(t, rootB, path)

	writeFile(t, filepath.Join(rootA, "a-only.md"), "x")
	writeFile(t, filepath.Join(rootB, "b-only.md"), "x")

	event, ok := rec.waitFor("b-only.md")
	require.True(t, ok)
	assert.Equal(t, idB, event.VaultID)

	time.Sleep(quietWindow / 2)
	_, found := rec.find("a-only.md")
	assert.False(t, found, "previous vault must no longer be watched")
}

func TestWatcher_Unwatch(t *testing.T) {
	w, rec := newTestWatcher(t)
	root := t.TempDir()
	id := uuid.New()
	require.NoError(t, w.Watch(id, root))

	w.Unwatch(uuid.New())
	_, _, ok := w.Current()
	require.True(t, ok, "unwatching another id is a no-op")

	w.Unwatch(id)
	_, _, ok = w.Current()
	require.False(t, ok)

	writeFile(t, filepath.Join(root, "after.md"), "x")
	time.Sleep(quietWindow)
	assert.Empty(t, rec.events())

	w.Unwatch(id)
}

func TestWatcher_WatchMissingPath(t *testing.T) {
	w, _ := newTestWatcher(t)

	err := w.Watch(uuid.New(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	_, _, ok := w.Current()
	assert.False(t, ok)
}

func TestWatcher_Closed(t *testing.T) {
	w := New(Options{})
	require.NoError(t, w.Watch(uuid.New(), t.TempDir()))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, _, ok := w.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, w.Watch(uuid.New(), t.TempDir()), ErrClosed)
}

func TestWatcher_SubscribeCancel(t *testing.T) {
	w, rec := newTestWatcher(t)
	other := newRecorder()
	cancel := w.Subscribe(other.handle)
	cancel()
	cancel()

	root := t.TempDir()
	require.NoError(t, w.Watch(uuid.New(), root))
	writeFile(t, filepath.Join(root, "x.md"), "x")

	_, ok := rec.waitFor("x.md")
	require.True(t, ok)
	assert.Empty(t, other.events())
}

func TestWatcher_EnqueueDropsOnOverflow(t *testing.T) {
	w := New(Options{})
	s := &session{events: make(chan fsnotify.Event, 1)}

	w.enqueue(s, fsnotify.Event{Name: "/a", Op: fsnotify.Write})
	w.enqueue(s, fsnotify.Event{Name: "/b", Op: fsnotify.Write})

	assert.Equal(t, uint64(1), w.Dropped())
	assert.Equal(t, "/a", (<-s.events).Name)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		op     fsnotify.Op
		want   domain.FileEventType
		wantOK bool
	}{
		{fsnotify.Create, domain.FileEventCreate, true},
		{fsnotify.Write, domain.FileEventModify, true},
		{fsnotify.Remove, domain.FileEventDelete, true},
		{fsnotify.Rename, domain.FileEventDelete, true},
		{fsnotify.Create | fsnotify.Write, domain.FileEventCreate, true},
		{fsnotify.Chmod, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, ok := classify(tt.op)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
