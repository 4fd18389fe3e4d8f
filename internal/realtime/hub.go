// Package realtime fans row-change notifications out to in-process subscribers.
package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeos/internal/metrics"
)

type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Mask selects which operations a subscription receives.
type Mask uint8

const (
	MaskInsert Mask = 1 << iota
	MaskUpdate
	MaskDelete

	MaskAll = MaskInsert | MaskUpdate | MaskDelete
)

func (m Mask) has(op Op) bool {
	switch op {
	case OpInsert:
		return m&MaskInsert != 0
	case OpUpdate:
		return m&MaskUpdate != 0
	case OpDelete:
		return m&MaskDelete != 0
	}
	return false
}

// Change describes one committed row mutation.
type Change struct {
	Table  string          `json:"table"`
	Op     Op              `json:"op"`
	UserID uuid.UUID       `json:"user_id"`
	Record json.RawMessage `json:"record,omitempty"`
	At     time.Time       `json:"at"`
}

type Subscription struct {
	id    uint64
	table string
	mask  Mask
	queue chan Change
	done  chan struct{}
	once  sync.Once
}

const queueSize = 64

// Hub delivers each change to every subscription on its table whose mask matches.
// Every subscription owns a bounded queue drained by its own goroutine, so a slow
// callback never stalls Publish: when a queue is full the change is dropped.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string]map[uint64]*Subscription
	closed bool
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[uint64]*Subscription),
	}
}

// Subscribe registers cb for changes on table. Callbacks run sequentially per
// subscription and may observe the same row more than once.
func (h *Hub) Subscribe(table string, mask Mask, cb func(Change)) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	sub := &Subscription{
		id:    h.nextID,
		table: table,
		mask:  mask,
		queue: make(chan Change, queueSize),
		done:  make(chan struct{}),
	}
	if h.closed {
		sub.stop()
		return sub
	}
	if h.subs[table] == nil {
		h.subs[table] = make(map[uint64]*Subscription)
	}
	h.subs[table][sub.id] = sub
	metrics.SetRealtimeSubscribers(h.countLocked())
	go sub.run(cb)
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	if subs, ok := h.subs[sub.table]; ok {
		delete(subs, sub.id)
		if len(subs) == 0 {
			delete(h.subs, sub.table)
		}
	}
	metrics.SetRealtimeSubscribers(h.countLocked())
	h.mu.Unlock()
	sub.stop()
}

func (h *Hub) Publish(change Change) {
	if change.At.IsZero() {
		change.At = time.Now()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs[change.Table] {
		if !sub.mask.has(change.Op) {
			continue
		}
		select {
		case sub.queue <- change:
		default:
			metrics.RealtimeDropped()
			slog.Warn("realtime queue full, change dropped", slog.String("table", change.Table), slog.Uint64("sub", sub.id))
		}
	}
}

// Close stops every subscription. Later Subscribe calls return inert subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for table, subs := range h.subs {
		for _, sub := range subs {
			sub.stop()
		}
		delete(h.subs, table)
	}
	metrics.SetRealtimeSubscribers(0)
}

func (h *Hub) countLocked() int {
	n := 0
	for _, subs := range h.subs {
		n += len(subs)
	}
	return n
}

func (s *Subscription) Table() string {
	return s.table
}

// Done is closed once the subscription stops receiving changes.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) stop() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *Subscription) run(cb func(Change)) {
	for {
		select {
		case <-s.done:
			return
		case c := <-s.queue:
			cb(c)
		}
	}
}
