package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateTemplateRequest struct {
	Name string `validate:"required,min=1,max=200"`
}

type CreateGoalRequest struct {
	Title        string  `validate:"required,min=1,max=200"`
	Description  *string `validate:"omitempty,max=2000"`
	RewardPoints int     `validate:"gte=0,lte=1000"`
}

type CreateTaskRequest struct {
	Text     string `validate:"required,min=1,max=500"`
	Category string `validate:"omitempty,max=50"`
}

type LogMoodRequest struct {
	Mood string `validate:"required,mood"`
	Note string `validate:"max=2000"`
}

type CreateJournalRequest struct {
	Title   string `validate:"max=200"`
	Content string `validate:"required,max=20000"`
}

type LogWorkoutRequest struct {
	Exercise string     `validate:"required,max=200"`
	Sets     int        `validate:"gte=0,lte=1000"`
	Reps     int        `validate:"gte=0,lte=10000"`
	Notes    string     `validate:"max=2000"`
	Date     *time.Time `validate:"omitempty"`
}

type FinishSessionRequest struct {
	Kind     string `validate:"required,oneof=study break"`
	Duration int    `validate:"required,gt=0,lte=600"`
}

type CreateRomanceRequest struct {
	Title string     `validate:"required,max=200"`
	Notes string     `validate:"max=2000"`
	Date  *time.Time `validate:"omitempty"`
}

type CreateConnectionRequest struct {
	Name             string     `validate:"required,max=200"`
	LastContact      *time.Time `validate:"omitempty"`
	ReminderInterval int        `validate:"gte=0,lte=365"`
}

type CreateMediaRequest struct {
	Title  string `validate:"required,max=200"`
	Kind   string `validate:"required,oneof=movie show book game music other"`
	Status string `validate:"required,oneof=planned in_progress completed dropped"`
	Rating *int   `validate:"omitempty,gte=1,lte=10"`
	Notes  string `validate:"max=2000"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	Logout(ctx context.Context, id uuid.UUID)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Checks the password, deletes the user with all owned rows
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

// RecorderI appends entries to the life event log.
type RecorderI interface {
	Record(ctx context.Context, uid uuid.UUID, space entity.Space, eventType string, details any) (*entity.LifeEvent, error)
}

// ChangePublisher receives committed row changes. Implemented by realtime.Hub.
type ChangePublisher interface {
	Publish(change realtime.Change)
}

type HabitsServiceI interface {
	// Ensures one instance per active template for today and returns today's instances
	Reconcile(ctx context.Context, uid uuid.UUID, today time.Time) ([]*entity.HabitInstanceView, error)
	// Sets completion of an owned instance and returns the reloaded list for today
	Toggle(ctx context.Context, uid, instanceID uuid.UUID, completed bool, today time.Time) ([]*entity.HabitInstanceView, error)
	Retire(ctx context.Context, uid, templateID uuid.UUID) error
	CreateTemplate(ctx context.Context, uid uuid.UUID, req CreateTemplateRequest) (*entity.HabitTemplate, error)
	ListTemplates(ctx context.Context, uid uuid.UUID) ([]*entity.HabitTemplate, error)
}

type GoalsServiceI interface {
	ListToday(ctx context.Context, uid uuid.UUID, today time.Time) ([]*entity.Goal, error)
	Create(ctx context.Context, uid uuid.UUID, req CreateGoalRequest, today time.Time) (*entity.Goal, error)
	Toggle(ctx context.Context, uid, goalID uuid.UUID) (*entity.Goal, error)
	Streak(ctx context.Context, uid uuid.UUID, today time.Time) (int, error)
}

type PointsServiceI interface {
	Balance(ctx context.Context, uid uuid.UUID) (*entity.PointsBalance, error)
	Today(ctx context.Context, uid uuid.UUID, today time.Time) (int, error)
}

type StatsServiceI interface {
	Stats(ctx context.Context, uid uuid.UUID, loc *time.Location) (*entity.Stats, error)
}

type TasksServiceI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error)
	Create(ctx context.Context, uid uuid.UUID, req CreateTaskRequest) (*entity.Task, error)
	Toggle(ctx context.Context, uid, taskID uuid.UUID) (*entity.Task, error)
	Delete(ctx context.Context, uid, taskID uuid.UUID) error
}

type MentalServiceI interface {
	ListMoods(ctx context.Context, uid uuid.UUID) ([]*entity.Mood, error)
	LogMood(ctx context.Context, uid uuid.UUID, req LogMoodRequest) (*entity.Mood, error)
	ListJournal(ctx context.Context, uid uuid.UUID) ([]*entity.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, uid uuid.UUID, req CreateJournalRequest) (*entity.JournalEntry, error)
}

type PhysicalServiceI interface {
	ListWorkouts(ctx context.Context, uid uuid.UUID) ([]*entity.Workout, error)
	LogWorkout(ctx context.Context, uid uuid.UUID, req LogWorkoutRequest, today time.Time) (*entity.Workout, error)
}

type SchoolServiceI interface {
	ListSessions(ctx context.Context, uid uuid.UUID) ([]*entity.StudySession, error)
	FinishSession(ctx context.Context, uid uuid.UUID, req FinishSessionRequest) (*entity.StudySession, error)
}

type RomanceServiceI interface {
	ListEntries(ctx context.Context, uid uuid.UUID) ([]*entity.RomanceEntry, error)
	CreateEntry(ctx context.Context, uid uuid.UUID, req CreateRomanceRequest, today time.Time) (*entity.RomanceEntry, error)
	ListConnections(ctx context.Context, uid uuid.UUID, now time.Time) ([]*entity.Connection, error)
	CreateConnection(ctx context.Context, uid uuid.UUID, req CreateConnectionRequest, now time.Time) (*entity.Connection, error)
	TouchConnection(ctx context.Context, uid, connID uuid.UUID, now time.Time) (*entity.Connection, error)
}

type EntertainmentServiceI interface {
	List(ctx context.Context, uid uuid.UUID) ([]*entity.EntertainmentItem, error)
	Create(ctx context.Context, uid uuid.UUID, req CreateMediaRequest) (*entity.EntertainmentItem, error)
}

type RewardsServiceI interface {
	ListRewards(ctx context.Context) ([]*entity.Reward, error)
	Redeem(ctx context.Context, uid, rewardID uuid.UUID) (*entity.Redemption, error)
	ListRedemptions(ctx context.Context, uid uuid.UUID) ([]*entity.Redemption, error)
}

type SettingsServiceI interface {
	Get(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error)
	SetTheme(ctx context.Context, uid uuid.UUID, color string) (*entity.UserSettings, error)
}
