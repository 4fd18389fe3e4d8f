package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/lifeos/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user together with all owned rows
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitTemplatesRepositoryI interface {
	// Creates an active template, returns its id
	Create(ctx context.Context, template *entity.HabitTemplate) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitTemplate, error)
	// Lists templates of uid with active = true
	ListActive(ctx context.Context, uid uuid.UUID) ([]*entity.HabitTemplate, error)
	// Sets active = false. Instances are left untouched
	Retire(ctx context.Context, id uuid.UUID) error
	// Lists users owning at least one active template
	ListOwnersWithActive(ctx context.Context) ([]uuid.UUID, error)
}

type HabitInstancesRepositoryI interface {
	// Inserts an uncompleted instance unless one exists for (templateID, date).
	// Reports whether a row was created
	InsertIfAbsent(ctx context.Context, templateID uuid.UUID, date time.Time) (bool, error)
	// Lists instances dated date joined with active templates of uid
	ListForDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]*entity.HabitInstanceView, error)
	GetView(ctx context.Context, id uuid.UUID) (*entity.HabitInstanceView, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
}

type GoalsRepositoryI interface {
	// Creates goal, fills ID and Completed from the stored row
	Create(ctx context.Context, goal *entity.Goal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	ListByDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]*entity.Goal, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	// Completion rows with from <= created_date <= to, most recent first
	History(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.GoalDay, error)
	SumCompletedPoints(ctx context.Context, uid uuid.UUID, date time.Time) (int, error)
}

type LifeEventsRepositoryI interface {
	// Appends event, fills ID and CreatedAt
	Create(ctx context.Context, event *entity.LifeEvent) error
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.LifeEvent, error)
}

type PointsRepositoryI interface {
	Get(ctx context.Context, uid uuid.UUID) (*entity.PointsBalance, error)
}

type TasksRepositoryI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error)
	Create(ctx context.Context, task *entity.Task) error
	Toggle(ctx context.Context, id, uid uuid.UUID) (*entity.Task, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
}

type MoodsRepositoryI interface {
	ListRecent(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.Mood, error)
	Create(ctx context.Context, mood *entity.Mood) error
}

type JournalRepositoryI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.JournalEntry, error)
	Create(ctx context.Context, entry *entity.JournalEntry) error
}

type WorkoutsRepositoryI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Workout, error)
	Create(ctx context.Context, workout *entity.Workout) error
}

type StudySessionsRepositoryI interface {
	ListRecent(ctx context.Context, uid uuid.UUID, limit int) ([]*entity.StudySession, error)
	Create(ctx context.Context, session *entity.StudySession) error
}

type RomanceRepositoryI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.RomanceEntry, error)
	Create(ctx context.Context, entry *entity.RomanceEntry) error
}

type ConnectionsRepositoryI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Connection, error)
	Create(ctx context.Context, conn *entity.Connection) error
	Touch(ctx context.Context, id, uid uuid.UUID, at time.Time) (*entity.Connection, error)
}

type EntertainmentRepositoryI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.EntertainmentItem, error)
	Create(ctx context.Context, item *entity.EntertainmentItem) error
}

type RewardsRepositoryI interface {
	ListRewards(ctx context.Context) ([]*entity.Reward, error)
	GetReward(ctx context.Context, id uuid.UUID) (*entity.Reward, error)
	CreateRedemption(ctx context.Context, uid, rewardID uuid.UUID) (*entity.Redemption, error)
	ListRedemptions(ctx context.Context, uid uuid.UUID) ([]*entity.Redemption, error)
}

type SettingsRepositoryI interface {
	Get(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error)
	Upsert(ctx context.Context, settings *entity.UserSettings) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
