package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
)

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(conn PgConnection) *TasksRepository {
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) List(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT id, user_id, text, done, category FROM tasks
		WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("listing tasks error: " + err.Error())
	}
	defer rows.Close()
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t := entity.Task{}
		if err = rows.Scan(&t.ID, &t.UserID, &t.Text, &t.Done, &t.Category); err != nil {
			return nil, errors.New("task row parsing error: " + err.Error())
		}
		tasks = append(tasks, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected task rows error: " + err.Error())
	}
	return tasks, nil
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) error {
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks (user_id, text, category) VALUES ($1, $2, $3) RETURNING id, done;`,
		task.UserID, task.Text, task.Category)
	if err := row.Scan(&task.ID, &task.Done); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating task error: " + err.Error())
	}
	return nil
}

// Toggle flips done in place. Rows of other users are reported as missing.
func (tr *TasksRepository) Toggle(ctx context.Context, id, uid uuid.UUID) (*entity.Task, error) {
	t := entity.Task{ID: id, UserID: uid}
	row := tr.conn.QueryRow(ctx, `UPDATE tasks SET done = NOT done WHERE id = $1 AND user_id = $2
		RETURNING text, done, category;`, id, uid)
	if err := row.Scan(&t.Text, &t.Done, &t.Category); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("toggling task error: " + err.Error())
	}
	return &t, nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting task error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}
