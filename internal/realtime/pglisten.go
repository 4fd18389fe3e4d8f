package realtime

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tidwall/gjson"
)

// Channel is the NOTIFY channel the database triggers publish on.
const Channel = "lifeos_changes"

// Listener relays trigger notifications from PostgreSQL into a Hub.
type Listener struct {
	pool *pgxpool.Pool
	hub  *Hub
}

func NewListener(pool *pgxpool.Pool, hub *Hub) *Listener {
	return &Listener{
		pool: pool,
		hub:  hub,
	}
}

// Run holds one pooled connection in LISTEN mode until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return errors.New("acquiring listen connection error: " + err.Error())
	}
	defer conn.Release()
	if _, err = conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return errors.New("listen error: " + err.Error())
	}
	slog.Info("listening for database changes", slog.String("channel", Channel))
	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.New("waiting for notification error: " + err.Error())
		}
		change, ok := ParseNotification(n.Payload)
		if !ok {
			slog.Warn("malformed change notification", slog.String("payload", n.Payload))
			continue
		}
		l.hub.Publish(change)
	}
}

// ParseNotification decodes a trigger payload of the form
// {"table": .., "op": .., "user_id": .., "record": {..}}.
func ParseNotification(payload string) (Change, bool) {
	if !gjson.Valid(payload) {
		return Change{}, false
	}
	res := gjson.GetMany(payload, "table", "op", "user_id", "record")
	table, op, uid, record := res[0], res[1], res[2], res[3]
	if table.String() == "" || op.String() == "" {
		return Change{}, false
	}
	userID, err := uuid.Parse(uid.String())
	if err != nil {
		return Change{}, false
	}
	c := Change{
		Table:  table.String(),
		Op:     Op(op.String()),
		UserID: userID,
	}
	if record.Exists() {
		c.Record = []byte(record.Raw)
	}
	return c, true
}
