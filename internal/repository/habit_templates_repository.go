package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
)

type HabitTemplatesRepository struct {
	conn PgConnection
}

func NewHabitTemplatesRepo(conn PgConnection) *HabitTemplatesRepository {
	return &HabitTemplatesRepository{
		conn: conn,
	}
}

func (tr *HabitTemplatesRepository) Create(ctx context.Context, template *entity.HabitTemplate) (uuid.UUID, error) {
	var id uuid.UUID
	row := tr.conn.QueryRow(ctx,
		`INSERT INTO habit_templates (user_id, name) VALUES ($1, $2) RETURNING id;`,
		template.UserID,
		template.Name,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrorCode(err) {
		// Unique violation
		case codeUniqueViolation:
			return uuid.UUID{}, errorvalues.ErrTemplateExists
		// FK violation
		case codeFKViolation:
			return uuid.UUID{}, errorvalues.ErrUserNotFound
		}
		return uuid.UUID{}, errors.New("creating habit template db error: " + err.Error())
	}
	return id, nil
}

func (tr *HabitTemplatesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitTemplate, error) {
	t := entity.HabitTemplate{ID: id}
	row := tr.conn.QueryRow(ctx, `SELECT user_id, name, active, created_at FROM habit_templates WHERE id = $1;`, id)
	if err := row.Scan(&t.UserID, &t.Name, &t.Active, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTemplateNotFound
		}
		return nil, errors.New("getting habit template by id error: " + err.Error())
	}
	return &t, nil
}

func (tr *HabitTemplatesRepository) ListActive(ctx context.Context, uid uuid.UUID) ([]*entity.HabitTemplate, error) {
	rows, err := tr.conn.Query(ctx, `SELECT id, user_id, name, active, created_at
		FROM habit_templates WHERE user_id = $1 AND active ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("listing active habit templates error: " + err.Error())
	}
	defer rows.Close()
	templates := make([]*entity.HabitTemplate, 0)
	for rows.Next() {
		t := entity.HabitTemplate{}
		if err = rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Active, &t.CreatedAt); err != nil {
			return nil, errors.New("unmarshalling habit template error: " + err.Error())
		}
		templates = append(templates, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning templates: " + err.Error())
	}
	return templates, nil
}

func (tr *HabitTemplatesRepository) Retire(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE habit_templates SET active = FALSE WHERE id = $1;`, id)
	if err != nil {
		return errors.New("retiring habit template error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTemplateNotFound
	}
	return nil
}

func (tr *HabitTemplatesRepository) ListOwnersWithActive(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := tr.conn.Query(ctx, `SELECT DISTINCT user_id FROM habit_templates WHERE active;`)
	if err != nil {
		return nil, errors.New("listing template owners error: " + err.Error())
	}
	defer rows.Close()
	owners := make([]uuid.UUID, 0)
	for rows.Next() {
		var uid uuid.UUID
		if err = rows.Scan(&uid); err != nil {
			return nil, errors.New("unmarshalling template owner error: " + err.Error())
		}
		owners = append(owners, uid)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning owners: " + err.Error())
	}
	return owners, nil
}
