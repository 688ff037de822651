package repository

import (
	"context"
	"sync"
)

// Watcher fans out change signals to subscribers. Each subscriber gets a
// buffered channel of size one: a signal arriving while a previous one is
// still unread is coalesced, since consumers re-derive from the full
// snapshot anyway.
type Watcher struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

// NewWatcher creates an empty watcher.
func NewWatcher() *Watcher {
	return &Watcher{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a new subscriber. The channel is closed and removed
// when ctx is cancelled.
func (w *Watcher) Subscribe(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)

	w.mu.Lock()
	w.subs[ch] = struct{}{}
	w.mu.Unlock()

	go func() {
		<-ctx.Done()
		w.mu.Lock()
		delete(w.subs, ch)
		w.mu.Unlock()
		close(ch)
	}()

	return ch
}

// Broadcast signals every subscriber without blocking.
func (w *Watcher) Broadcast() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for ch := range w.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
