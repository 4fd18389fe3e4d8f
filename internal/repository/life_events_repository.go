package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
)

// LifeEventsRepository is append-only: there is no update or delete.
type LifeEventsRepository struct {
	conn PgConnection
}

func NewLifeEventsRepo(conn PgConnection) *LifeEventsRepository {
	return &LifeEventsRepository{
		conn: conn,
	}
}

func (er *LifeEventsRepository) Create(ctx context.Context, event *entity.LifeEvent) error {
	row := er.conn.QueryRow(
		ctx,
		`INSERT INTO life_events (user_id, space, type, details) VALUES ($1, $2, $3, $4) RETURNING id, created_at;`,
		event.UserID,
		string(event.Space),
		event.Type,
		event.Details,
	)
	if err := row.Scan(&event.ID, &event.CreatedAt); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating life event error: " + err.Error())
	}
	return nil
}

func (er *LifeEventsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.LifeEvent, error) {
	rows, err := er.conn.Query(ctx, `SELECT id, user_id, space, type, details, created_at
		FROM life_events WHERE user_id = $1 ORDER BY created_at ASC;`, uid)
	if err != nil {
		return nil, errors.New("listing life events error: " + err.Error())
	}
	defer rows.Close()
	events := make([]*entity.LifeEvent, 0)
	for rows.Next() {
		var (
			e     entity.LifeEvent
			space string
		)
		if err = rows.Scan(&e.ID, &e.UserID, &space, &e.Type, &e.Details, &e.CreatedAt); err != nil {
			return nil, errors.New("life event row parsing error: " + err.Error())
		}
		e.Space = entity.Space(space)
		events = append(events, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected life event rows error: " + err.Error())
	}
	return events, nil
}
