package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
)

const DefaultThemeColor = "green"

type SettingsRepository struct {
	conn PgConnection
}

func NewSettingsRepo(conn PgConnection) *SettingsRepository {
	return &SettingsRepository{
		conn: conn,
	}
}

// Get returns stored settings or the defaults when the user never saved any.
func (sr *SettingsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
	s := entity.UserSettings{UserID: uid}
	row := sr.conn.QueryRow(ctx, `SELECT theme_color FROM user_settings WHERE user_id = $1;`, uid)
	if err := row.Scan(&s.ThemeColor); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.ThemeColor = DefaultThemeColor
			return &s, nil
		}
		return nil, errors.New("getting settings error: " + err.Error())
	}
	return &s, nil
}

func (sr *SettingsRepository) Upsert(ctx context.Context, settings *entity.UserSettings) error {
	_, err := sr.conn.Exec(ctx, `INSERT INTO user_settings (user_id, theme_color) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET theme_color = EXCLUDED.theme_color, updated_at = now();`,
		settings.UserID, settings.ThemeColor)
	if err != nil {
		if pgErrorCode(err) == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving settings error: " + err.Error())
	}
	return nil
}
