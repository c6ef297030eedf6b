// Package changefeed fans out row-change hints to in-process listeners and
// streaming subscribers. Hints only tell consumers to re-read; they carry no
// authoritative data, so a slow subscriber may miss hints without harm.
package changefeed

import (
	"log/slog"
	"sync"

	"github.com/mmynk/tontine/internal/storage"
)

// Ensure Broker implements storage.ChangeNotifier
var _ storage.ChangeNotifier = (*Broker)(nil)

// Broker distributes storage.Change hints.
type Broker struct {
	mu        sync.RWMutex
	nextID    int
	subs      map[int]*subscription
	listeners []func(storage.Change)
	onDrop    func(storage.Change)
}

type subscription struct {
	groupID string // empty matches every group
	ch      chan storage.Change
}

// New creates an empty Broker.
func New() *Broker {
	return &Broker{subs: make(map[int]*subscription)}
}

// OnDrop registers a callback invoked when a hint is dropped for a full subscriber.
func (b *Broker) OnDrop(fn func(storage.Change)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onDrop = fn
}

// Listen registers fn to be called synchronously for every published change.
// fn must not block.
func (b *Broker) Listen(fn func(storage.Change)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Subscribe returns a channel receiving changes for groupID (all groups if
// empty) and a cancel func that closes it.
func (b *Broker) Subscribe(groupID string, buffer int) (<-chan storage.Change, func()) {
	if buffer < 1 {
		buffer = 1
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	sub := &subscription{groupID: groupID, ch: make(chan storage.Change, buffer)}
	b.subs[id] = sub
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish delivers change to listeners and matching subscribers without blocking.
func (b *Broker) Publish(change storage.Change) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, fn := range b.listeners {
		fn(change)
	}

	for _, sub := range b.subs {
		if sub.groupID != "" && sub.groupID != change.GroupID {
			continue
		}
		select {
		case sub.ch <- change:
		default:
			slog.Debug("Change hint dropped", "table", change.Table, "group_id", change.GroupID)
			if b.onDrop != nil {
				b.onDrop(change)
			}
		}
	}
}

// Subscribers returns the number of open subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
