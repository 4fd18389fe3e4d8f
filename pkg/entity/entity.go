package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Space string

const (
	SpacePlan          Space = "plan"
	SpaceSchool        Space = "school"
	SpaceRomance       Space = "romance"
	SpaceMental        Space = "mental"
	SpacePhysical      Space = "physical"
	SpaceEntertainment Space = "entertainment"
)

func (s Space) Valid() bool {
	switch s {
	case SpacePlan, SpaceSchool, SpaceRomance, SpaceMental, SpacePhysical, SpaceEntertainment:
		return true
	}
	return false
}

// HabitTemplate is a recurring habit definition. Retired templates keep Active=false
// and are never removed.
type HabitTemplate struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// HabitInstance is one day's occurrence of a template. Date has no time component.
type HabitInstance struct {
	ID         uuid.UUID `json:"id"`
	TemplateID uuid.UUID `json:"template_id"`
	Date       time.Time `json:"date"`
	Completed  bool      `json:"completed"`
}

type HabitInstanceView struct {
	InstanceID uuid.UUID `json:"id"`
	TemplateID uuid.UUID `json:"template_id"`
	UserID     uuid.UUID `json:"-"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Completed  bool      `json:"completed"`
}

type Goal struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"uid"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	Completed    bool      `json:"completed"`
	RewardPoints int       `json:"reward_points"`
	CreatedDate  time.Time `json:"created_date"`
}

// GoalDay is a single row of goal completion history.
type GoalDay struct {
	Date      time.Time
	Completed bool
}

type LifeEvent struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"uid"`
	Space     Space           `json:"space"`
	Type      string          `json:"type"`
	Details   json.RawMessage `json:"details"`
	CreatedAt time.Time       `json:"created_at"`
}

type PointsBalance struct {
	UserID  uuid.UUID `json:"uid"`
	Balance int       `json:"balance"`
}

type Stats struct {
	Counts      map[string]int            `json:"counts"`
	DailySeries map[string]map[string]int `json:"daily_series"`
	SpaceCounts map[Space]int             `json:"space_counts"`
}

type Task struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"uid"`
	Text     string    `json:"text"`
	Done     bool      `json:"done"`
	Category string    `json:"category"`
}

type Mood struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type JournalEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Workout struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"uid"`
	Exercise string    `json:"exercise"`
	Sets     int       `json:"sets"`
	Reps     int       `json:"reps"`
	Notes    string    `json:"notes"`
	Date     time.Time `json:"date"`
}

type StudySession struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"uid"`
	Kind     string    `json:"kind"`
	Duration int       `json:"duration"`
	EndedAt  time.Time `json:"ended_at"`
}

type RomanceEntry struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"uid"`
	Title  string    `json:"title"`
	Notes  string    `json:"notes"`
	Date   time.Time `json:"date"`
}

type Connection struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"uid"`
	Name             string     `json:"name"`
	LastContact      *time.Time `json:"last_contact,omitempty"`
	ReminderInterval int        `json:"reminder_interval"`
	DaysSince        *int       `json:"days_since,omitempty"`
	Due              bool       `json:"due"`
}

type EntertainmentItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	Rating    *int      `json:"rating,omitempty"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type Reward struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Cost        int       `json:"cost"`
}

type Redemption struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"uid"`
	RewardID   uuid.UUID `json:"reward_id"`
	RedeemedAt time.Time `json:"redeemed_at"`
	Reward     *Reward   `json:"reward,omitempty"`
}

type UserSettings struct {
	UserID     uuid.UUID `json:"uid"`
	ThemeColor string    `json:"theme_color"`
}

// Day truncates t to its calendar day in t's own location and returns it as a
// midnight UTC value, the form in which DATE columns are stored and compared.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
