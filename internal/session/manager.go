// Package session holds the process-wide authentication context: who the current
// request acts for and who wants to hear about sign-in, sign-out and deletion.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Event string

const (
	SignedIn  Event = "signed_in"
	SignedOut Event = "signed_out"
	Deleted   Event = "deleted"
)

type AuthState struct {
	Event  Event
	UserID uuid.UUID
	At     time.Time
}

type ctxKey struct{}

// WithUser stores the authenticated user id in ctx.
func WithUser(ctx context.Context, uid uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, uid)
}

// CurrentUser returns the authenticated user or uuid.Nil with false when the
// request carries no session.
func CurrentUser(ctx context.Context) (uuid.UUID, bool) {
	uid, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	if !ok || uid == uuid.Nil {
		return uuid.Nil, false
	}
	return uid, true
}

type Subscription struct {
	id uint64
	m  *Manager
}

// Unsubscribe is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.m == nil {
		return
	}
	s.m.mu.Lock()
	delete(s.m.listeners, s.id)
	s.m.mu.Unlock()
}

// Manager is created once at startup and closed on shutdown.
type Manager struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]func(AuthState)
	closed    bool
}

func NewManager() *Manager {
	return &Manager{
		listeners: make(map[uint64]func(AuthState)),
	}
}

func (m *Manager) OnAuthStateChange(cb func(AuthState)) *Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return &Subscription{}
	}
	m.nextID++
	m.listeners[m.nextID] = cb
	return &Subscription{id: m.nextID, m: m}
}

// Notify calls listeners synchronously outside the lock, so a listener may
// unsubscribe itself.
func (m *Manager) Notify(event Event, uid uuid.UUID) {
	state := AuthState{Event: event, UserID: uid, At: time.Now()}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	cbs := make([]func(AuthState), 0, len(m.listeners))
	for _, cb := range m.listeners {
		cbs = append(cbs, cb)
	}
	m.mu.Unlock()
	slog.Debug("auth state change", slog.String("event", string(event)), slog.String("uid", uid.String()))
	for _, cb := range cbs {
		cb(state)
	}
}

func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	clear(m.listeners)
}
