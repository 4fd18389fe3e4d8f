package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
)

type MoodsRepository struct {
	conn PgConnection
}

func NewMoodsRepo(conn PgConnection) *MoodsRepository {
	return &MoodsRepository{
		conn: conn,
	}
}

func (mr *MoodsRepository) ListRecent(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Mood, error) {
	rows, err := mr.conn.Query(ctx, `SELECT id, user_id, mood, note, created_at FROM moods
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("listing moods error: " + err.Error())
	}
	defer rows.Close()
	moods := make([]*entity.Mood, 0, limit)
	for rows.Next() {
		m := entity.Mood{}
		if err = rows.Scan(&m.ID, &m.UserID, &m.Mood, &m.Note, &m.CreatedAt); err != nil {
			return nil, errors.New("mood row parsing error: " + err.Error())
		}
		moods = append(moods, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected mood rows error: " + err.Error())
	}
	return moods, nil
}

func (mr *MoodsRepository) Create(ctx context.Context, mood *entity.Mood) error {
	row := mr.conn.QueryRow(ctx, `INSERT INTO moods (user_id, mood, note) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		mood.UserID, mood.Mood, mood.Note)
	if err := row.Scan(&mood.ID, &mood.CreatedAt); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating mood error: " + err.Error())
	}
	return nil
}

type JournalRepository struct {
	conn PgConnection
}

func NewJournalRepo(conn PgConnection) *JournalRepository {
	return &JournalRepository{
		conn: conn,
	}
}

func (jr *JournalRepository) List(ctx context.Context, uid uuid.UUID) ([]*entity.JournalEntry, error) {
	rows, err := jr.conn.Query(ctx, `SELECT id, user_id, title, content, created_at FROM mental_journal
		WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing journal error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]*entity.JournalEntry, 0)
	for rows.Next() {
		e := entity.JournalEntry{}
		if err = rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.CreatedAt); err != nil {
			return nil, errors.New("journal row parsing error: " + err.Error())
		}
		entries = append(entries, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected journal rows error: " + err.Error())
	}
	return entries, nil
}

func (jr *JournalRepository) Create(ctx context.Context, entry *entity.JournalEntry) error {
	row := jr.conn.QueryRow(ctx, `INSERT INTO mental_journal (user_id, title, content) VALUES ($1, $2, $3)
		RETURNING id, created_at;`, entry.UserID, entry.Title, entry.Content)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating journal entry error: " + err.Error())
	}
	return nil
}
