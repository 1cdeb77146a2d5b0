package watcher

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPendingTTL is how long a marked path suppresses notifications
const DefaultPendingTTL = 500 * time.Millisecond

// PendingSet holds short-lived markers for paths the application is about to
// change. A marker covers the path itself and everything beneath it.
type PendingSet struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	marks map[string]time.Time // path -> deadline
}

// NewPendingSet creates a set whose markers live for ttl
func NewPendingSet(ttl time.Duration) *PendingSet {
	if ttl <= 0 {
		ttl = DefaultPendingTTL
	}
	return &PendingSet{
		ttl:   ttl,
		now:   time.Now,
		marks: make(map[string]time.Time),
	}
}

// MarkPending registers absolute paths. Re-marking a path extends its deadline.
// When a path's parent does not exist yet, the highest missing ancestor is
// marked too: the caller creates those directories along with the path.
func (p *PendingSet) MarkPending(paths ...string) {
	deadline := p.now().Add(p.ttl)

	marked := make([]string, 0, len(paths))
	for _, path := range paths {
		path = filepath.Clean(path)
		marked = append(marked, path)
		if top, ok := missingAncestor(path); ok {
			marked = append(marked, top)
		}
	}

	p.mu.Lock()
	for _, path := range marked {
		p.marks[path] = deadline
	}
	p.mu.Unlock()

	for _, path := range marked {
		time.AfterFunc(p.ttl, func() { p.expire(path, deadline) })
	}
}

// missingAncestor returns the highest ancestor of path that does not exist
func missingAncestor(path string) (string, bool) {
	var top string
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		if _, err := os.Lstat(dir); !errors.Is(err, fs.ErrNotExist) {
			break
		}
		top = dir
		if filepath.Dir(dir) == dir {
			break
		}
	}
	return top, top != ""
}

// expire drops path unless it was re-marked with a later deadline
func (p *PendingSet) expire(path string, deadline time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if d, ok := p.marks[path]; ok && !d.After(deadline) {
		delete(p.marks, path)
	}
}

// Covers reports whether path or one of its ancestors holds a live marker
func (p *PendingSet) Covers(path string) bool {
	now := p.now()
	current := filepath.Clean(path)

	p.mu.Lock()
	defer p.mu.Unlock()
	for {
		if d, ok := p.marks[current]; ok && now.Before(d) {
			return true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return false
		}
		current = parent
	}
}

// Len returns the number of stored markers, expired or not
func (p *PendingSet) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.marks)
}
