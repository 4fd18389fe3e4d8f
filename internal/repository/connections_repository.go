package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
)

type ConnectionsRepository struct {
	conn PgConnection
}

func NewConnectionsRepo(conn PgConnection) *ConnectionsRepository {
	return &ConnectionsRepository{
		conn: conn,
	}
}

func (cr *ConnectionsRepository) List(ctx context.Context, uid uuid.UUID) ([]*entity.Connection, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, user_id, name, last_contact, reminder_interval FROM connections
		WHERE user_id = $1 ORDER BY name;`, uid)
	if err != nil {
		return nil, errors.New("listing connections error: " + err.Error())
	}
	defer rows.Close()
	conns := make([]*entity.Connection, 0)
	for rows.Next() {
		c := entity.Connection{}
		if err = rows.Scan(&c.ID, &c.UserID, &c.Name, &c.LastContact, &c.ReminderInterval); err != nil {
			return nil, errors.New("connection row parsing error: " + err.Error())
		}
		conns = append(conns, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected connection rows error: " + err.Error())
	}
	return conns, nil
}

func (cr *ConnectionsRepository) Create(ctx context.Context, c *entity.Connection) error {
	row := cr.conn.QueryRow(ctx, `INSERT INTO connections (user_id, name, last_contact, reminder_interval)
		VALUES ($1, $2, $3, $4) RETURNING id;`, c.UserID, c.Name, c.LastContact, c.ReminderInterval)
	if err := row.Scan(&c.ID); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating connection error: " + err.Error())
	}
	return nil
}

// Touch stamps last_contact with at. Rows of other users are reported as missing.
func (cr *ConnectionsRepository) Touch(ctx context.Context, id, uid uuid.UUID, at time.Time) (*entity.Connection, error) {
	c := entity.Connection{ID: id, UserID: uid}
	row := cr.conn.QueryRow(ctx, `UPDATE connections SET last_contact = $1 WHERE id = $2 AND user_id = $3
		RETURNING name, last_contact, reminder_interval;`, at, id, uid)
	if err := row.Scan(&c.Name, &c.LastContact, &c.ReminderInterval); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrConnectionNotFound
		}
		return nil, errors.New("touching connection error: " + err.Error())
	}
	return &c, nil
}
