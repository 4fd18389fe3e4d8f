package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/metrics"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/pkg/entity"
)

const tableLifeEvents = "life_events"

type EventsService struct {
	repo      repository.LifeEventsRepositoryI
	publisher ChangePublisher
}

func NewEventsService(repo repository.LifeEventsRepositoryI, publisher ChangePublisher) *EventsService {
	return &EventsService{
		repo:      repo,
		publisher: publisher,
	}
}

// Record appends one event to the log. details is marshalled as is; nil becomes {}.
func (es *EventsService) Record(ctx context.Context, uid uuid.UUID, space entity.Space, eventType string, details any) (*entity.LifeEvent, error) {
	if !space.Valid() {
		return nil, errorvalues.ErrInvalidSpace
	}
	if eventType == "" {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("event type is empty"))
	}
	raw := []byte("{}")
	if details != nil {
		var err error
		raw, err = sonic.Marshal(details)
		if err != nil {
			return nil, errors.New("marshalling event details error: " + err.Error())
		}
	}
	event := entity.LifeEvent{
		UserID:  uid,
		Space:   space,
		Type:    eventType,
		Details: raw,
	}
	if err := es.repo.Create(ctx, &event); err != nil {
		metrics.RecordLifeEvent(string(space), eventType, false)
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("life events repository error: " + err.Error())
	}
	metrics.RecordLifeEvent(string(space), eventType, true)
	publish(es.publisher, tableLifeEvents, realtime.OpInsert, uid, &event)
	return &event, nil
}

// mirror is the life event written after a successful mutation.
type mirror struct {
	space     entity.Space
	eventType string
	details   any
}

// WriteThrough bundles what a write path needs after its mutation commits.
type WriteThrough struct {
	recorder  RecorderI
	publisher ChangePublisher
}

func NewWriteThrough(recorder RecorderI, publisher ChangePublisher) *WriteThrough {
	return &WriteThrough{
		recorder:  recorder,
		publisher: publisher,
	}
}

// recorded runs mutate and, only when it succeeds, publishes the change on table and
// appends the event produced by mirrorOf (nil mirrorOf or nil result means no event).
// A failure to record is logged: the committed write is still reported as a success.
func recorded[T any](ctx context.Context, wt *WriteThrough, uid uuid.UUID, table string, op realtime.Op,
	mutate func() (T, error), mirrorOf func(T) *mirror) (T, error) {
	result, err := mutate()
	if err != nil {
		return result, err
	}
	if wt == nil {
		return result, nil
	}
	publish(wt.publisher, table, op, uid, result)
	if mirrorOf == nil || wt.recorder == nil {
		return result, nil
	}
	m := mirrorOf(result)
	if m == nil {
		return result, nil
	}
	if _, err := wt.recorder.Record(ctx, uid, m.space, m.eventType, m.details); err != nil {
		slog.Error("recording life event failed",
			slog.String("uid", uid.String()),
			slog.String("type", m.eventType),
			slog.String("error", err.Error()),
		)
	}
	return result, nil
}

func publish(p ChangePublisher, table string, op realtime.Op, uid uuid.UUID, record any) {
	if p == nil {
		return
	}
	change := realtime.Change{
		Table:  table,
		Op:     op,
		UserID: uid,
		At:     time.Now(),
	}
	if record != nil {
		if raw, err := sonic.Marshal(record); err == nil {
			change.Record = raw
		}
	}
	p.Publish(change)
}
