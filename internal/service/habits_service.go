package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/metrics"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/pkg/entity"
)

const (
	tableHabitTemplates = "habit_templates"
	tableHabitInstances = "habit_instances"
)

type HabitsService struct {
	templates repository.HabitTemplatesRepositoryI
	instances repository.HabitInstancesRepositoryI
	wt        *WriteThrough
}

func NewHabitsService(templates repository.HabitTemplatesRepositoryI, instances repository.HabitInstancesRepositoryI, wt *WriteThrough) *HabitsService {
	if templates == nil || instances == nil {
		log.Fatal("on habits service provided nil repos")
	}
	return &HabitsService{
		templates: templates,
		instances: instances,
		wt:        wt,
	}
}

// Reconcile creates today's instance for every active template lacking one and reads
// back the joined view. Concurrent calls are safe: storage keeps (template, date) unique.
func (hs *HabitsService) Reconcile(ctx context.Context, uid uuid.UUID, today time.Time) ([]*entity.HabitInstanceView, error) {
	if uid == uuid.Nil {
		return []*entity.HabitInstanceView{}, nil
	}
	day := entity.Day(today)
	templates, err := hs.templates.ListActive(ctx, uid)
	if err != nil {
		return nil, errors.New("habit templates repository error: " + err.Error())
	}
	created := 0
	for _, t := range templates {
		ok, err := hs.instances.InsertIfAbsent(ctx, t.ID, day)
		if err != nil {
			// Another reconciliation won the race, or the template vanished meanwhile.
			if errors.Is(err, errorvalues.ErrInstanceExists) || errors.Is(err, errorvalues.ErrTemplateNotFound) {
				continue
			}
			return nil, errors.New("habit instances repository error: " + err.Error())
		}
		if ok {
			created++
		}
	}
	metrics.AddReconciledInstances(created)
	if created > 0 && hs.wt != nil {
		publish(hs.wt.publisher, tableHabitInstances, realtime.OpInsert, uid, nil)
	}
	views, err := hs.instances.ListForDate(ctx, uid, day)
	if err != nil {
		return nil, errors.New("habit instances repository error: " + err.Error())
	}
	return views, nil
}

func (hs *HabitsService) Toggle(ctx context.Context, uid, instanceID uuid.UUID, completed bool, today time.Time) ([]*entity.HabitInstanceView, error) {
	if uid == uuid.Nil {
		return []*entity.HabitInstanceView{}, nil
	}
	view, err := hs.instances.GetView(ctx, instanceID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInstanceNotFound) {
			return nil, err
		}
		return nil, errors.New("habit instances repository error: " + err.Error())
	}
	if view.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	_, err = recorded(ctx, hs.wt, uid, tableHabitInstances, realtime.OpUpdate, func() (*entity.HabitInstanceView, error) {
		if err := hs.instances.SetCompleted(ctx, instanceID, completed); err != nil {
			if errors.Is(err, errorvalues.ErrInstanceNotFound) {
				return nil, err
			}
			return nil, errors.New("habit instances repository error: " + err.Error())
		}
		view.Completed = completed
		return view, nil
	}, func(v *entity.HabitInstanceView) *mirror {
		return &mirror{
			space:     entity.SpacePhysical,
			eventType: EventHabitToggle,
			details:   map[string]any{"name": v.Name, "completed": v.Completed},
		}
	})
	if err != nil {
		return nil, err
	}
	return hs.Reconcile(ctx, uid, today)
}

// Retire deactivates a template. Its instances stay as history.
func (hs *HabitsService) Retire(ctx context.Context, uid, templateID uuid.UUID) error {
	if uid == uuid.Nil {
		return nil
	}
	t, err := hs.templates.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTemplateNotFound) {
			return err
		}
		return errors.New("habit templates repository error: " + err.Error())
	}
	if t.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	_, err = recorded(ctx, hs.wt, uid, tableHabitTemplates, realtime.OpUpdate, func() (*entity.HabitTemplate, error) {
		if err := hs.templates.Retire(ctx, templateID); err != nil {
			if errors.Is(err, errorvalues.ErrTemplateNotFound) {
				return nil, err
			}
			return nil, errors.New("habit templates repository error: " + err.Error())
		}
		t.Active = false
		return t, nil
	}, nil)
	return err
}

func (hs *HabitsService) CreateTemplate(ctx context.Context, uid uuid.UUID, req CreateTemplateRequest) (*entity.HabitTemplate, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	return recorded(ctx, hs.wt, uid, tableHabitTemplates, realtime.OpInsert, func() (*entity.HabitTemplate, error) {
		id, err := hs.templates.Create(ctx, &entity.HabitTemplate{UserID: uid, Name: req.Name})
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrTemplateExists):
				return nil, err
			}
			return nil, errors.New("habit templates repository error: " + err.Error())
		}
		t, err := hs.templates.GetByID(ctx, id)
		if err != nil {
			return nil, errors.New("habit templates repository error: " + err.Error())
		}
		return t, nil
	}, func(t *entity.HabitTemplate) *mirror {
		return &mirror{
			space:     entity.SpacePhysical,
			eventType: EventHabit,
			details:   map[string]any{"name": t.Name, "completed": false},
		}
	})
}

func (hs *HabitsService) ListTemplates(ctx context.Context, uid uuid.UUID) ([]*entity.HabitTemplate, error) {
	if uid == uuid.Nil {
		return []*entity.HabitTemplate{}, nil
	}
	templates, err := hs.templates.ListActive(ctx, uid)
	if err != nil {
		return nil, errors.New("habit templates repository error: " + err.Error())
	}
	return templates, nil
}
