package service

import (
	"context"
	"errors"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/pkg/entity"
)

// StreakWindow is how many calendar days of goal history a streak looks at.
const StreakWindow = 14

const tableDailyGoals = "daily_goals"

// ComputeStreak counts consecutive calendar days ending today that have at least one
// completed goal. Order of history and duplicate days do not matter.
func ComputeStreak(history []entity.GoalDay, today time.Time) int {
	streak := 0
	for cursor := entity.Day(today); ; cursor = cursor.AddDate(0, 0, -1) {
		key := cursor.Format(time.DateOnly)
		completed := slices.ContainsFunc(history, func(d entity.GoalDay) bool {
			return d.Completed && entity.Day(d.Date).Format(time.DateOnly) == key
		})
		if !completed {
			return streak
		}
		streak++
	}
}

type GoalsService struct {
	repo repository.GoalsRepositoryI
	wt   *WriteThrough
}

func NewGoalsService(goalsRepo repository.GoalsRepositoryI, wt *WriteThrough) *GoalsService {
	if goalsRepo == nil {
		log.Fatal("provided nil goalsRepo")
	}
	return &GoalsService{
		repo: goalsRepo,
		wt:   wt,
	}
}

func (gs *GoalsService) ListToday(ctx context.Context, uid uuid.UUID, today time.Time) ([]*entity.Goal, error) {
	if uid == uuid.Nil {
		return []*entity.Goal{}, nil
	}
	goals, err := gs.repo.ListByDate(ctx, uid, entity.Day(today))
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalsService) Create(ctx context.Context, uid uuid.UUID, req CreateGoalRequest, today time.Time) (*entity.Goal, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return recorded(ctx, gs.wt, uid, tableDailyGoals, realtime.OpInsert, func() (*entity.Goal, error) {
		g := entity.Goal{
			UserID:       uid,
			Title:        req.Title,
			Description:  req.Description,
			RewardPoints: req.RewardPoints,
			CreatedDate:  entity.Day(today),
		}
		if err := gs.repo.Create(ctx, &g); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("goals repository error: " + err.Error())
		}
		return &g, nil
	}, nil)
}

// Toggle flips completion. The points balance follows through a database trigger.
func (gs *GoalsService) Toggle(ctx context.Context, uid, goalID uuid.UUID) (*entity.Goal, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	goal, err := gs.repo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return recorded(ctx, gs.wt, uid, tableDailyGoals, realtime.OpUpdate, func() (*entity.Goal, error) {
		if err := gs.repo.SetCompleted(ctx, goal.ID, !goal.Completed); err != nil {
			if errors.Is(err, errorvalues.ErrGoalNotFound) {
				return nil, err
			}
			return nil, errors.New("goals repository error: " + err.Error())
		}
		goal.Completed = !goal.Completed
		return goal, nil
	}, nil)
}

func (gs *GoalsService) Streak(ctx context.Context, uid uuid.UUID, today time.Time) (int, error) {
	if uid == uuid.Nil {
		return 0, nil
	}
	to := entity.Day(today)
	from := to.AddDate(0, 0, -(StreakWindow - 1))
	history, err := gs.repo.History(ctx, uid, from, to)
	if err != nil {
		return 0, errors.New("goals repository error: " + err.Error())
	}
	return ComputeStreak(history, today), nil
}
