// Package bus carries the event collection between the owning UI and
// the scheduling side: owners push snapshots, the scheduler asks for
// the authoritative collection and gets an asynchronous reply.
package bus

import (
	"context"
	"errors"
	"sync"

	"github.com/mkobaru/yotei/internal/model"
)

var ErrClosed = errors.New("bus: closed")

type request struct {
	reply chan []model.Event
}

type Bus struct {
	mu     sync.RWMutex
	latest []model.Event

	requests chan request
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

func New() *Bus {
	b := &Bus{
		requests: make(chan request),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go b.serve()
	return b
}

func (b *Bus) serve() {
	defer close(b.doneCh)
	for {
		select {
		case req := <-b.requests:
			req.reply <- b.Snapshot()
		case <-b.stopCh:
			return
		}
	}
}

// Publish replaces the held collection with a copy of events.
// Last write wins; there is no merge or conflict detection.
func (b *Bus) Publish(events []model.Event) {
	snapshot := make([]model.Event, len(events))
	copy(snapshot, events)

	b.mu.Lock()
	b.latest = snapshot
	b.mu.Unlock()
}

// Snapshot returns a copy of the most recently published collection.
func (b *Bus) Snapshot() []model.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.Event, len(b.latest))
	copy(out, b.latest)
	return out
}

// Request asks the owner side for the current collection and waits for
// the reply, honoring ctx cancellation.
func (b *Bus) Request(ctx context.Context) ([]model.Event, error) {
	req := request{reply: make(chan []model.Event, 1)}
	select {
	case b.requests <- req:
	case <-b.doneCh:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case events := <-req.reply:
		return events, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Events implements scheduler.Source.
func (b *Bus) Events(ctx context.Context) ([]model.Event, error) {
	return b.Request(ctx)
}

func (b *Bus) Close() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
	})
	<-b.doneCh
}
