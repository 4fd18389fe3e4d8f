package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
)

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(conn PgConnection) *WorkoutsRepository {
	return &WorkoutsRepository{
		conn: conn,
	}
}

func (wr *WorkoutsRepository) List(ctx context.Context, uid uuid.UUID) ([]*entity.Workout, error) {
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, exercise, sets, reps, notes, date FROM workouts
		WHERE user_id = $1 ORDER BY date DESC, created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing workouts error: " + err.Error())
	}
	defer rows.Close()
	workouts := make([]*entity.Workout, 0)
	for rows.Next() {
		w := entity.Workout{}
		if err = rows.Scan(&w.ID, &w.UserID, &w.Exercise, &w.Sets, &w.Reps, &w.Notes, &w.Date); err != nil {
			return nil, errors.New("workout row parsing error: " + err.Error())
		}
		workouts = append(workouts, &w)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout rows error: " + err.Error())
	}
	return workouts, nil
}

func (wr *WorkoutsRepository) Create(ctx context.Context, workout *entity.Workout) error {
	row := wr.conn.QueryRow(ctx, `INSERT INTO workouts (user_id, exercise, sets, reps, notes, date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		workout.UserID, workout.Exercise, workout.Sets, workout.Reps, workout.Notes, workout.Date)
	if err := row.Scan(&workout.ID); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating workout error: " + err.Error())
	}
	return nil
}

type StudySessionsRepository struct {
	conn PgConnection
}

func NewStudySessionsRepo(conn PgConnection) *StudySessionsRepository {
	return &StudySessionsRepository{
		conn: conn,
	}
}

func (sr *StudySessionsRepository) ListRecent(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.StudySession, error) {
	rows, err := sr.conn.Query(ctx, `SELECT id, user_id, kind, duration, ended_at FROM study_sessions
		WHERE user_id = $1 ORDER BY ended_at DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("listing study sessions error: " + err.Error())
	}
	defer rows.Close()
	sessions := make([]*entity.StudySession, 0, limit)
	for rows.Next() {
		s := entity.StudySession{}
		if err = rows.Scan(&s.ID, &s.UserID, &s.Kind, &s.Duration, &s.EndedAt); err != nil {
			return nil, errors.New("study session row parsing error: " + err.Error())
		}
		sessions = append(sessions, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected study session rows error: " + err.Error())
	}
	return sessions, nil
}

func (sr *StudySessionsRepository) Create(ctx context.Context, session *entity.StudySession) error {
	row := sr.conn.QueryRow(ctx, `INSERT INTO study_sessions (user_id, kind, duration) VALUES ($1, $2, $3)
		RETURNING id, ended_at;`, session.UserID, session.Kind, session.Duration)
	if err := row.Scan(&session.ID, &session.EndedAt); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating study session error: " + err.Error())
	}
	return nil
}

type RomanceRepository struct {
	conn PgConnection
}

func NewRomanceRepo(conn PgConnection) *RomanceRepository {
	return &RomanceRepository{
		conn: conn,
	}
}

func (rr *RomanceRepository) List(ctx context.Context, uid uuid.UUID) ([]*entity.RomanceEntry, error) {
	rows, err := rr.conn.Query(ctx, `SELECT id, user_id, title, notes, date FROM romance_entries
		WHERE user_id = $1 ORDER BY date DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing romance entries error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]*entity.RomanceEntry, 0)
	for rows.Next() {
		e := entity.RomanceEntry{}
		if err = rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Notes, &e.Date); err != nil {
			return nil, errors.New("romance entry row parsing error: " + err.Error())
		}
		entries = append(entries, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected romance entry rows error: " + err.Error())
	}
	return entries, nil
}

func (rr *RomanceRepository) Create(ctx context.Context, entry *entity.RomanceEntry) error {
	row := rr.conn.QueryRow(ctx, `INSERT INTO romance_entries (user_id, title, notes, date) VALUES ($1, $2, $3, $4)
		RETURNING id;`, entry.UserID, entry.Title, entry.Notes, entry.Date)
	if err := row.Scan(&entry.ID); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating romance entry error: " + err.Error())
	}
	return nil
}

type EntertainmentRepository struct {
	conn PgConnection
}

func NewEntertainmentRepo(conn PgConnection) *EntertainmentRepository {
	return &EntertainmentRepository{
		conn: conn,
	}
}

func (er *EntertainmentRepository) List(ctx context.Context, uid uuid.UUID) ([]*entity.EntertainmentItem, error) {
	rows, err := er.conn.Query(ctx, `SELECT id, user_id, title, kind, status, rating, notes, created_at
		FROM entertainment_items WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing entertainment error: " + err.Error())
	}
	defer rows.Close()
	items := make([]*entity.EntertainmentItem, 0)
	for rows.Next() {
		it := entity.EntertainmentItem{}
		if err = rows.Scan(&it.ID, &it.UserID, &it.Title, &it.Kind, &it.Status, &it.Rating, &it.Notes, &it.CreatedAt); err != nil {
			return nil, errors.New("entertainment row parsing error: " + err.Error())
		}
		items = append(items, &it)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected entertainment rows error: " + err.Error())
	}
	return items, nil
}

func (er *EntertainmentRepository) Create(ctx context.Context, item *entity.EntertainmentItem) error {
	row := er.conn.QueryRow(ctx, `INSERT INTO entertainment_items (user_id, title, kind, status, rating, notes)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
		item.UserID, item.Title, item.Kind, item.Status, item.Rating, item.Notes)
	if err := row.Scan(&item.ID, &item.CreatedAt); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating entertainment item error: " + err.Error())
	}
	return nil
}
