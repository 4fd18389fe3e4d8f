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

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(conn PgConnection) *GoalsRepository {
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.Goal) error {
	row := gr.conn.QueryRow(
		ctx,
		`INSERT INTO daily_goals (user_id, title, description, reward_points, created_date)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, completed;`,
		goal.UserID,
		goal.Title,
		goal.Description,
		goal.RewardPoints,
		goal.CreatedDate,
	)
	if err := row.Scan(&goal.ID, &goal.Completed); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating goal db error: " + err.Error())
	}
	return nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	g := entity.Goal{ID: id}
	row := gr.conn.QueryRow(ctx, `SELECT user_id, title, description, completed, reward_points, created_date
		FROM daily_goals WHERE id = $1;`, id)
	if err := row.Scan(&g.UserID, &g.Title, &g.Description, &g.Completed, &g.RewardPoints, &g.CreatedDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return &g, nil
}

func (gr *GoalsRepository) ListByDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]*entity.Goal, error) {
	rows, err := gr.conn.Query(ctx, `SELECT id, user_id, title, description, completed, reward_points, created_date
		FROM daily_goals WHERE user_id = $1 AND created_date = $2 ORDER BY title;`, uid, date)
	if err != nil {
		return nil, errors.New("listing goals error: " + err.Error())
	}
	defer rows.Close()
	goals := make([]*entity.Goal, 0)
	for rows.Next() {
		g := entity.Goal{}
		if err = rows.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.Completed, &g.RewardPoints, &g.CreatedDate); err != nil {
			return nil, errors.New("goal row parsing error: " + err.Error())
		}
		goals = append(goals, &g)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected goal rows error: " + err.Error())
	}
	return goals, nil
}

func (gr *GoalsRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE daily_goals SET completed = $1 WHERE id = $2;`, completed, id)
	if err != nil {
		return errors.New("updating goal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) History(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.GoalDay, error) {
	rows, err := gr.conn.Query(ctx, `SELECT created_date, completed FROM daily_goals
		WHERE user_id = $1 AND created_date >= $2 AND created_date <= $3 ORDER BY created_date DESC;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting goal history error: " + err.Error())
	}
	defer rows.Close()
	history := make([]entity.GoalDay, 0, 14)
	for rows.Next() {
		day := entity.GoalDay{}
		if err = rows.Scan(&day.Date, &day.Completed); err != nil {
			return nil, errors.New("goal history row parsing error: " + err.Error())
		}
		history = append(history, day)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected goal history rows error: " + err.Error())
	}
	return history, nil
}

func (gr *GoalsRepository) SumCompletedPoints(ctx context.Context, uid uuid.UUID, date time.Time) (int, error) {
	var total int
	row := gr.conn.QueryRow(ctx, `SELECT COALESCE(SUM(reward_points), 0) FROM daily_goals
		WHERE user_id = $1 AND created_date = $2 AND completed;`, uid, date)
	if err := row.Scan(&total); err != nil {
		return 0, errors.New("summing goal points error: " + err.Error())
	}
	return total, nil
}
