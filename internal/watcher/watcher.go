// Package watcher polls a single source file and reports content changes.
package watcher

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"time"
)

// Snapshot captures a point-in-time view of the watched file.
type Snapshot struct {
	Timestamp time.Time
	Size      int64
	ModTime   time.Time
	Sum       [sha256.Size]byte
	Content   []byte
}

// Event is emitted when the watched file's content changes, or when it can
// no longer be read.
type Event struct {
	Path    string
	Content string
	Time    time.Time
	Err     error
}

// Watcher polls a file at a regular interval and emits an Event whenever its
// content differs from the last observed content.
type Watcher struct {
	path     string
	interval time.Duration
	previous *Snapshot
	onChange func(Event)
	lastErr  string // dedup: suppress repeated identical read errors
}

// New creates a Watcher for path.
func New(path string, interval time.Duration, onChange func(Event)) *Watcher {
	return &Watcher{
		path:     path,
		interval: interval,
		onChange: onChange,
	}
}

// Run emits the initial content, then checks at every interval. Blocks until
// ctx is cancelled. Failing to read the file initially is fatal.
func (w *Watcher) Run(ctx context.Context) error {
	initial, err := w.Snapshot()
	if err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}
	w.previous = initial
	w.emit(Event{Path: w.path, Content: string(initial.Content), Time: initial.Timestamp})

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if ev := w.Check(); ev != nil {
				w.emit(*ev)
			}
		}
	}
}

func (w *Watcher) emit(ev Event) {
	if w.onChange != nil {
		w.onChange(ev)
	}
}

// Check performs a single poll. It returns nil when nothing changed. Size and
// modification time are compared first so unchanged files are not re-read.
func (w *Watcher) Check() *Event {
	info, err := os.Stat(w.path)
	if err != nil {
		return w.failure(err)
	}
	if w.previous != nil && info.Size() == w.previous.Size && info.ModTime().Equal(w.previous.ModTime) {
		return nil
	}

	curr, err := w.Snapshot()
	if err != nil {
		return w.failure(err)
	}
	w.lastErr = ""

	changed := w.previous == nil || curr.Sum != w.previous.Sum
	w.previous = curr
	if !changed {
		return nil
	}
	return &Event{Path: w.path, Content: string(curr.Content), Time: curr.Timestamp}
}

func (w *Watcher) failure(err error) *Event {
	msg := err.Error()
	if msg == w.lastErr {
		return nil
	}
	w.lastErr = msg
	return &Event{Path: w.path, Time: time.Now(), Err: err}
}

// Snapshot reads the file and records its size, modification time and hash.
func (w *Watcher) Snapshot() (*Snapshot, error) {
	info, err := os.Stat(w.path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(w.path)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Timestamp: time.Now(),
		Size:      info.Size(),
		ModTime:   info.ModTime(),
		Sum:       sha256.Sum256(content),
		Content:   bytes.Clone(content),
	}, nil
}
