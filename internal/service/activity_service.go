package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/pkg/entity"
)

const (
	tableWorkouts           = "workouts"
	tableStudySessions      = "study_sessions"
	tableEntertainmentItems = "entertainment_items"

	recentSessionsLimit = 10
	sessionKindStudy    = "study"
)

type PhysicalService struct {
	repo repository.WorkoutsRepositoryI
	wt   *WriteThrough
}

func NewPhysicalService(repo repository.WorkoutsRepositoryI, wt *WriteThrough) *PhysicalService {
	return &PhysicalService{
		repo: repo,
		wt:   wt,
	}
}

func (ps *PhysicalService) ListWorkouts(ctx context.Context, uid uuid.UUID) ([]*entity.Workout, error) {
	if uid == uuid.Nil {
		return []*entity.Workout{}, nil
	}
	workouts, err := ps.repo.List(ctx, uid)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	return workouts, nil
}

func (ps *PhysicalService) LogWorkout(ctx context.Context, uid uuid.UUID, req LogWorkoutRequest, today time.Time) (*entity.Workout, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date := entity.Day(today)
	if req.Date != nil {
		date = entity.Day(*req.Date)
	}
	return recorded(ctx, ps.wt, uid, tableWorkouts, realtime.OpInsert, func() (*entity.Workout, error) {
		w := entity.Workout{
			UserID:   uid,
			Exercise: req.Exercise,
			Sets:     req.Sets,
			Reps:     req.Reps,
			Notes:    req.Notes,
			Date:     date,
		}
		if err := ps.repo.Create(ctx, &w); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("workouts repository error: " + err.Error())
		}
		return &w, nil
	}, func(w *entity.Workout) *mirror {
		return &mirror{
			space:     entity.SpacePhysical,
			eventType: EventWorkout,
			details: map[string]any{
				"exercise": w.Exercise,
				"sets":     w.Sets,
				"reps":     w.Reps,
				"notes":    w.Notes,
			},
		}
	})
}

type SchoolService struct {
	repo repository.StudySessionsRepositoryI
	wt   *WriteThrough
}

func NewSchoolService(repo repository.StudySessionsRepositoryI, wt *WriteThrough) *SchoolService {
	return &SchoolService{
		repo: repo,
		wt:   wt,
	}
}

func (ss *SchoolService) ListSessions(ctx context.Context, uid uuid.UUID) ([]*entity.StudySession, error) {
	if uid == uuid.Nil {
		return []*entity.StudySession{}, nil
	}
	sessions, err := ss.repo.ListRecent(ctx, uid, recentSessionsLimit)
	if err != nil {
		return nil, errors.New("study sessions repository error: " + err.Error())
	}
	return sessions, nil
}

// FinishSession stores a finished timer run. Only study runs reach the event log,
// so breaks never inflate study minutes.
func (ss *SchoolService) FinishSession(ctx context.Context, uid uuid.UUID, req FinishSessionRequest) (*entity.StudySession, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return recorded(ctx, ss.wt, uid, tableStudySessions, realtime.OpInsert, func() (*entity.StudySession, error) {
		s := entity.StudySession{UserID: uid, Kind: req.Kind, Duration: req.Duration}
		if err := ss.repo.Create(ctx, &s); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("study sessions repository error: " + err.Error())
		}
		return &s, nil
	}, func(s *entity.StudySession) *mirror {
		// Breaks are stored but stay out of the event log, so study_session counts
		// and minutes reflect study time only.
		if s.Kind != sessionKindStudy {
			return nil
		}
		return &mirror{
			space:     entity.SpaceSchool,
			eventType: EventStudySession,
			details:   map[string]any{"session_type": s.Kind, "duration": s.Duration},
		}
	})
}

type EntertainmentService struct {
	repo repository.EntertainmentRepositoryI
	wt   *WriteThrough
}

func NewEntertainmentService(repo repository.EntertainmentRepositoryI, wt *WriteThrough) *EntertainmentService {
	return &EntertainmentService{
		repo: repo,
		wt:   wt,
	}
}

func (es *EntertainmentService) List(ctx context.Context, uid uuid.UUID) ([]*entity.EntertainmentItem, error) {
	if uid == uuid.Nil {
		return []*entity.EntertainmentItem{}, nil
	}
	items, err := es.repo.List(ctx, uid)
	if err != nil {
		return nil, errors.New("entertainment repository error: " + err.Error())
	}
	return items, nil
}

func (es *EntertainmentService) Create(ctx context.Context, uid uuid.UUID, req CreateMediaRequest) (*entity.EntertainmentItem, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return recorded(ctx, es.wt, uid, tableEntertainmentItems, realtime.OpInsert, func() (*entity.EntertainmentItem, error) {
		it := entity.EntertainmentItem{
			UserID: uid,
			Title:  req.Title,
			Kind:   req.Kind,
			Status: req.Status,
			Rating: req.Rating,
			Notes:  req.Notes,
		}
		if err := es.repo.Create(ctx, &it); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("entertainment repository error: " + err.Error())
		}
		return &it, nil
	}, func(it *entity.EntertainmentItem) *mirror {
		return &mirror{
			space:     entity.SpaceEntertainment,
			eventType: EventMedia,
			details: map[string]any{
				"title":  it.Title,
				"kind":   it.Kind,
				"status": it.Status,
				"rating": it.Rating,
				"notes":  it.Notes,
			},
		}
	})
}
