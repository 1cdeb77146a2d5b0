// Package watcher turns native filesystem notifications for the active vault
// into debounced, deduplicated batches of domain events.
//
// At most one vault is watched at a time. Paths marked pending by the
// application are suppressed so callers only hear about external changes.
package watcher

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"inkrypt/internal/domain"
	"inkrypt/internal/logger"
	"inkrypt/internal/ports"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

const (
	DefaultDebounce   = 200 * time.Millisecond
	DefaultBufferSize = 100
)

// ErrClosed is returned by Watch after Close
var ErrClosed = errors.New("watcher closed")

// Options configures a Watcher. Zero values select the defaults.
type Options struct {
	Debounce   time.Duration
	BufferSize int
	Pending    *PendingSet
	Logger     *logger.Logger
}

// Watcher implements ports.VaultWatcher on top of fsnotify
type Watcher struct {
	debounce   time.Duration
	bufferSize int
	pending    *PendingSet
	log        *logger.Logger

	mu     sync.Mutex
	active *session
	closed bool

	subMu   sync.RWMutex
	subs    map[uint64]ports.ChangeHandler
	nextSub uint64

	dropped atomic.Uint64
}

// Ensure Watcher implements VaultWatcher
var _ ports.VaultWatcher = (*Watcher)(nil)

// session is one Watching state: the native watcher plus its two goroutines
type session struct {
	vaultID uuid.UUID
	root    string
	fsw     *fsnotify.Watcher
	events  chan fsnotify.Event
	done    chan struct{}
	wg      sync.WaitGroup
}

// New creates an idle Watcher
func New(opts Options) *Watcher {
	w := &Watcher{
		debounce:   opts.Debounce,
		bufferSize: opts.BufferSize,
		pending:    opts.Pending,
		log:        opts.Logger,
		subs:       make(map[uint64]ports.ChangeHandler),
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if w.bufferSize <= 0 {
		w.bufferSize = DefaultBufferSize
	}
	if w.pending == nil {
		w.pending = NewPendingSet(DefaultPendingTTL)
	}
	if w.log == nil {
		w.log = logger.Nop()
	}
	return w
}

// Pending exposes the shared marker set
func (w *Watcher) Pending() *PendingSet {
	return w.pending
}

// MarkPending suppresses notifications for paths (and their descendants) for the TTL
func (w *Watcher) MarkPending(paths ...string) {
	w.pending.MarkPending(paths...)
}

// Watch starts watching path for vaultID, stopping any current watch first.
// Failure to establish the native watch is returned.
func (w *Watcher) Watch(vaultID uuid.UUID, path string) error {
	root, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving watch path: %w", err)
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	previous := w.detachLocked()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		previous.join()
		return fmt.Errorf("creating native watcher: %w", err)
	}
	s := &session{
		vaultID: vaultID,
		root:    root,
		fsw:     fsw,
		events:  make(chan fsnotify.Event, w.bufferSize),
		done:    make(chan struct{}),
	}
	if err := s.addTree(root); err != nil {
		fsw.Close()
		w.mu.Unlock()
		previous.join()
		return fmt.Errorf("watching %s: %w", root, err)
	}

	s.wg.Add(2)
	go w.forward(s)
	go w.consume(s)
	w.active = s
	w.mu.Unlock()

	previous.join()
	w.log.Info().Str("vault_id", vaultID.String()).Str("path", root).Msg("watching vault")
	return nil
}

// Unwatch stops the active watch if it belongs to vaultID and waits for its goroutines
func (w *Watcher) Unwatch(vaultID uuid.UUID) {
	w.mu.Lock()
	if w.active == nil || w.active.vaultID != vaultID {
		w.mu.Unlock()
		return
	}
	s := w.detachLocked()
	w.mu.Unlock()

	s.join()
	w.log.Info().Str("vault_id", vaultID.String()).Msg("stopped watching vault")
}

// Current reports the watched vault, if any
func (w *Watcher) Current() (uuid.UUID, string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active == nil {
		return uuid.Nil, "", false
	}
	return w.active.vaultID, w.active.root, true
}

// Subscribe registers h for every emitted batch. Handlers run on the
// consumer goroutine, must not block and must not call Watch or Unwatch.
func (w *Watcher) Subscribe(h ports.ChangeHandler) (cancel func()) {
	w.subMu.Lock()
	id := w.nextSub
	w.nextSub++
	w.subs[id] = h
	w.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			w.subMu.Lock()
			delete(w.subs, id)
			w.subMu.Unlock()
		})
	}
}

// Close stops any active watch. Later Watch calls fail with ErrClosed.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	s := w.detachLocked()
	w.mu.Unlock()

	s.join()
	return nil
}

// Dropped returns how many native events were discarded on overflow
func (w *Watcher) Dropped() uint64 {
	return w.dropped.Load()
}

// detachLocked signals the active session to stop and clears the slot.
// The caller joins the returned session after releasing w.mu.
func (w *Watcher) detachLocked() *session {
	s := w.active
	if s == nil {
		return nil
	}
	w.active = nil

	close(s.done)
	if err := s.fsw.Close(); err != nil {
		w.log.Warn().Err(err).Str("path", s.root).Msg("failed to close native watcher")
	}
	return s
}

func (s *session) join() {
	if s != nil {
		s.wg.Wait()
	}
}

// addTree watches dir and every directory beneath it except the metadata directory
func (s *session) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == dir {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == domain.MetadataDirName {
			return filepath.SkipDir
		}
		if err := s.fsw.Add(p); err != nil {
			if p == dir {
				return err
			}
			// vanished while walking
			return nil
		}
		return nil
	})
}

// forward moves native events into the bounded buffer without ever blocking
func (w *Watcher) forward(s *session) {
	defer s.wg.Done()
	for {
		select {
		case event, ok := <-s.fsw.Events:
			if !ok {
				return
			}
			w.enqueue(s, event)
		case err, ok := <-s.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Str("path", s.root).Msg("native watcher error")
		case <-s.done:
			return
		}
	}
}

func (w *Watcher) enqueue(s *session, event fsnotify.Event) {
	select {
	case s.events <- event:
	default:
		n := w.dropped.Add(1)
		w.log.Warn().Str("path", event.Name).Uint64("dropped", n).Msg("event buffer full, dropping event")
	}
}

// consume batches translated events and flushes at most once per debounce window.
// The ticker is not reset by arrivals; a partial batch is discarded on stop.
func (w *Watcher) consume(s *session) {
	defer s.wg.Done()

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	var (
		buffer    []domain.FileSystemEvent
		lastFlush time.Time
	)
	for {
		select {
		case <-s.done:
			return
		case event := <-s.events:
			if e, ok := w.translate(s, event); ok {
				buffer = append(buffer, e)
			}
		case now := <-ticker.C:
			if len(buffer) == 0 || now.Sub(lastFlush) < w.debounce {
				continue
			}
			batch := domain.DeduplicateEvents(buffer)
			buffer = nil
			lastFlush = now
			w.emit(batch)
		}
	}
}

// translate applies the filter chain to one native event: pending markers,
// the metadata directory, the kind mapping, then the vault-relative path.
// An event for the vault root itself carries the empty path.
func (w *Watcher) translate(s *session, event fsnotify.Event) (domain.FileSystemEvent, bool) {
	// New directories must be watched even when the change itself is ours.
	if event.Has(fsnotify.Create) {
		w.watchCreated(s, event.Name)
	}

	if w.pending.Covers(event.Name) {
		return domain.FileSystemEvent{}, false
	}
	if domain.HasMetadataComponent(strings.TrimPrefix(event.Name, s.root)) {
		return domain.FileSystemEvent{}, false
	}
	kind, ok := classify(event.Op)
	if !ok {
		return domain.FileSystemEvent{}, false
	}
	rel, ok := domain.RelativeEventPath(s.root, event.Name)
	if !ok {
		return domain.FileSystemEvent{}, false
	}
	return domain.FileSystemEvent{EventType: kind, Path: rel, VaultID: s.vaultID}, true
}

func (w *Watcher) watchCreated(s *session, name string) {
	rel, ok := domain.RelativeEventPath(s.root, name)
	if !ok || rel == "" || domain.HasMetadataComponent(rel) {
		return
	}
	if info, err := os.Lstat(name); err == nil && info.IsDir() {
		if err := s.addTree(name); err != nil {
			w.log.Warn().Err(err).Str("path", name).Msg("failed to watch new directory")
		}
	}
}

// classify maps a native op onto an event kind. A rename reports the old
// name, which no longer exists, so it is a delete; the new name arrives as a create.
func classify(op fsnotify.Op) (domain.FileEventType, bool) {
	switch {
	case op.Has(fsnotify.Remove), op.Has(fsnotify.Rename):
		return domain.FileEventDelete, true
	case op.Has(fsnotify.Create):
		return domain.FileEventCreate, true
	case op.Has(fsnotify.Write):
		return domain.FileEventModify, true
	default:
		return "", false
	}
}

func (w *Watcher) emit(batch []domain.FileSystemEvent) {
	w.subMu.RLock()
	handlers := slices.Collect(maps.Values(w.subs))
	w.subMu.RUnlock()

	w.log.Debug().Int("events", len(batch)).Int("subscribers", len(handlers)).Msg("emitting change batch")
	for _, h := range handlers {
		h(slices.Clone(batch))
	}
}
