package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateNotFound
	stateWrongOwner
	stateConflict
)

// Variables for tests
var (
	userID   = uuid.New()
	today    = time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	errMock  = errors.New("db error")
	otherUID = uuid.New()
)

type recordedEvent struct {
	UserID  uuid.UUID
	Space   entity.Space
	Type    string
	Details any
}

type recorderMock struct {
	mu     sync.Mutex
	fail   bool
	events []recordedEvent
}

func (rm *recorderMock) Record(ctx context.Context, uid uuid.UUID, space entity.Space, eventType string, details any) (*entity.LifeEvent, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if rm.fail {
		return nil, errMock
	}
	rm.events = append(rm.events, recordedEvent{UserID: uid, Space: space, Type: eventType, Details: details})
	return &entity.LifeEvent{ID: uuid.New(), UserID: uid, Space: space, Type: eventType}, nil
}

func (rm *recorderMock) recorded() []recordedEvent {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return append([]recordedEvent(nil), rm.events...)
}

type publisherMock struct {
	mu      sync.Mutex
	changes []realtime.Change
}

func (pm *publisherMock) Publish(c realtime.Change) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.changes = append(pm.changes, c)
}

func (pm *publisherMock) tables() []string {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	tables := make([]string, 0, len(pm.changes))
	for _, c := range pm.changes {
		tables = append(tables, c.Table)
	}
	return tables
}

func newWriteThrough() (*service.WriteThrough, *recorderMock, *publisherMock) {
	rec := &recorderMock{}
	pub := &publisherMock{}
	return service.NewWriteThrough(rec, pub), rec, pub
}
