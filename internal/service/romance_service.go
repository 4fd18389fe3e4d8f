package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/pkg/entity"
)

const (
	tableRomanceEntries = "romance_entries"
	tableConnections    = "connections"

	DefaultReminderInterval = 7
)

// Annotate fills DaysSince and Due relative to now. A connection never contacted
// is always due.
func Annotate(c *entity.Connection, now time.Time) {
	interval := c.ReminderInterval
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	if c.LastContact == nil {
		c.DaysSince = nil
		c.Due = true
		return
	}
	last := entity.Day(c.LastContact.In(now.Location()))
	days := int(entity.Day(now).Sub(last).Hours() / 24)
	if days < 0 {
		days = 0
	}
	c.DaysSince = &days
	c.Due = days >= interval
}

type RomanceService struct {
	entries     repository.RomanceRepositoryI
	connections repository.ConnectionsRepositoryI
	wt          *WriteThrough
}

func NewRomanceService(entries repository.RomanceRepositoryI, connections repository.ConnectionsRepositoryI, wt *WriteThrough) *RomanceService {
	return &RomanceService{
		entries:     entries,
		connections: connections,
		wt:          wt,
	}
}

func (rs *RomanceService) ListEntries(ctx context.Context, uid uuid.UUID) ([]*entity.RomanceEntry, error) {
	if uid == uuid.Nil {
		return []*entity.RomanceEntry{}, nil
	}
	entries, err := rs.entries.List(ctx, uid)
	if err != nil {
		return nil, errors.New("romance repository error: " + err.Error())
	}
	return entries, nil
}

func (rs *RomanceService) CreateEntry(ctx context.Context, uid uuid.UUID, req CreateRomanceRequest, today time.Time) (*entity.RomanceEntry, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date := entity.Day(today)
	if req.Date != nil {
		date = entity.Day(*req.Date)
	}
	return recorded(ctx, rs.wt, uid, tableRomanceEntries, realtime.OpInsert, func() (*entity.RomanceEntry, error) {
		e := entity.RomanceEntry{UserID: uid, Title: req.Title, Notes: req.Notes, Date: date}
		if err := rs.entries.Create(ctx, &e); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("romance repository error: " + err.Error())
		}
		return &e, nil
	}, func(e *entity.RomanceEntry) *mirror {
		return &mirror{
			space:     entity.SpaceRomance,
			eventType: EventDate,
			details: map[string]any{
				"title": e.Title,
				"notes": e.Notes,
				"date":  e.Date.Format(time.DateOnly),
			},
		}
	})
}

func (rs *RomanceService) ListConnections(ctx context.Context, uid uuid.UUID, now time.Time) ([]*entity.Connection, error) {
	if uid == uuid.Nil {
		return []*entity.Connection{}, nil
	}
	conns, err := rs.connections.List(ctx, uid)
	if err != nil {
		return nil, errors.New("connections repository error: " + err.Error())
	}
	for _, c := range conns {
		Annotate(c, now)
	}
	return conns, nil
}

func (rs *RomanceService) CreateConnection(ctx context.Context, uid uuid.UUID, req CreateConnectionRequest, now time.Time) (*entity.Connection, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.ReminderInterval == 0 {
		req.ReminderInterval = DefaultReminderInterval
	}
	return recorded(ctx, rs.wt, uid, tableConnections, realtime.OpInsert, func() (*entity.Connection, error) {
		c := entity.Connection{
			UserID:           uid,
			Name:             req.Name,
			LastContact:      req.LastContact,
			ReminderInterval: req.ReminderInterval,
		}
		if err := rs.connections.Create(ctx, &c); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("connections repository error: " + err.Error())
		}
		Annotate(&c, now)
		return &c, nil
	}, nil)
}

// TouchConnection records that the user was in contact now.
func (rs *RomanceService) TouchConnection(ctx context.Context, uid, connID uuid.UUID, now time.Time) (*entity.Connection, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	return recorded(ctx, rs.wt, uid, tableConnections, realtime.OpUpdate, func() (*entity.Connection, error) {
		c, err := rs.connections.Touch(ctx, connID, uid, now)
		if err != nil {
			if errors.Is(err, errorvalues.ErrConnectionNotFound) {
				return nil, err
			}
			return nil, errors.New("connections repository error: " + err.Error())
		}
		Annotate(c, now)
		return c, nil
	}, nil)
}
