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

type HabitInstancesRepository struct {
	conn PgConnection
}

func NewHabitInstancesRepo(conn PgConnection) *HabitInstancesRepository {
	return &HabitInstancesRepository{
		conn: conn,
	}
}

// InsertIfAbsent leans on UNIQUE (template_id, date): concurrent reconciliations of
// the same day end up with a single row.
func (ir *HabitInstancesRepository) InsertIfAbsent(ctx context.Context, templateID uuid.UUID, date time.Time) (bool, error) {
	ct, err := ir.conn.Exec(
		ctx,
		`INSERT INTO habit_instances (template_id, date) VALUES ($1, $2) ON CONFLICT (template_id, date) DO NOTHING;`,
		templateID,
		date,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case codeUniqueViolation:
			return false, errorvalues.ErrInstanceExists
		case codeFKViolation:
			return false, errorvalues.ErrTemplateNotFound
		}
		return false, errors.New("creating habit instance error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}

func (ir *HabitInstancesRepository) ListForDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]*entity.HabitInstanceView, error) {
	rows, err := ir.conn.Query(
		ctx,
		`SELECT i.id, i.template_id, t.user_id, t.name, i.date, i.completed
		FROM habit_instances i JOIN habit_templates t ON t.id = i.template_id
		WHERE t.user_id = $1 AND t.active AND i.date = $2 ORDER BY t.created_at;`,
		uid,
		date,
	)
	if err != nil {
		return nil, errors.New("listing habit instances error: " + err.Error())
	}
	defer rows.Close()
	views := make([]*entity.HabitInstanceView, 0)
	for rows.Next() {
		v := entity.HabitInstanceView{}
		if err = rows.Scan(&v.InstanceID, &v.TemplateID, &v.UserID, &v.Name, &v.Date, &v.Completed); err != nil {
			return nil, errors.New("habit instance row parsing error: " + err.Error())
		}
		views = append(views, &v)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected habit instance rows error: " + err.Error())
	}
	return views, nil
}

func (ir *HabitInstancesRepository) GetView(ctx context.Context, id uuid.UUID) (*entity.HabitInstanceView, error) {
	v := entity.HabitInstanceView{InstanceID: id}
	row := ir.conn.QueryRow(
		ctx,
		`SELECT i.template_id, t.user_id, t.name, i.date, i.completed
		FROM habit_instances i JOIN habit_templates t ON t.id = i.template_id WHERE i.id = $1;`,
		id,
	)
	if err := row.Scan(&v.TemplateID, &v.UserID, &v.Name, &v.Date, &v.Completed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrInstanceNotFound
		}
		return nil, errors.New("getting habit instance error: " + err.Error())
	}
	return &v, nil
}

func (ir *HabitInstancesRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	ct, err := ir.conn.Exec(ctx, `UPDATE habit_instances SET completed = $1 WHERE id = $2;`, completed, id)
	if err != nil {
		return errors.New("updating habit instance error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrInstanceNotFound
	}
	return nil
}
