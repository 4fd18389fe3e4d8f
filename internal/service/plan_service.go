package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/pkg/entity"
)

const (
	tableTasks        = "tasks"
	tableUserSettings = "user_settings"

	defaultTaskCategory = "general"
)

type TasksService struct {
	repo repository.TasksRepositoryI
	wt   *WriteThrough
}

func NewTasksService(repo repository.TasksRepositoryI, wt *WriteThrough) *TasksService {
	return &TasksService{
		repo: repo,
		wt:   wt,
	}
}

func (ts *TasksService) List(ctx context.Context, uid uuid.UUID) ([]*entity.Task, error) {
	if uid == uuid.Nil {
		return []*entity.Task{}, nil
	}
	tasks, err := ts.repo.List(ctx, uid)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (ts *TasksService) Create(ctx context.Context, uid uuid.UUID, req CreateTaskRequest) (*entity.Task, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	req.Text = strings.TrimSpace(req.Text)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Category == "" {
		req.Category = defaultTaskCategory
	}
	return recorded(ctx, ts.wt, uid, tableTasks, realtime.OpInsert, func() (*entity.Task, error) {
		t := entity.Task{UserID: uid, Text: req.Text, Category: req.Category}
		if err := ts.repo.Create(ctx, &t); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("tasks repository error: " + err.Error())
		}
		return &t, nil
	}, nil)
}

func (ts *TasksService) Toggle(ctx context.Context, uid, taskID uuid.UUID) (*entity.Task, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	return recorded(ctx, ts.wt, uid, tableTasks, realtime.OpUpdate, func() (*entity.Task, error) {
		t, err := ts.repo.Toggle(ctx, taskID, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrTaskNotFound) {
				return nil, err
			}
			return nil, errors.New("tasks repository error: " + err.Error())
		}
		return t, nil
	}, nil)
}

func (ts *TasksService) Delete(ctx context.Context, uid, taskID uuid.UUID) error {
	if uid == uuid.Nil {
		return nil
	}
	_, err := recorded(ctx, ts.wt, uid, tableTasks, realtime.OpDelete, func() (*entity.Task, error) {
		if err := ts.repo.Delete(ctx, taskID, uid); err != nil {
			if errors.Is(err, errorvalues.ErrTaskNotFound) {
				return nil, err
			}
			return nil, errors.New("tasks repository error: " + err.Error())
		}
		return &entity.Task{ID: taskID, UserID: uid}, nil
	}, nil)
	return err
}

type SettingsService struct {
	repo repository.SettingsRepositoryI
	wt   *WriteThrough
}

func NewSettingsService(repo repository.SettingsRepositoryI, wt *WriteThrough) *SettingsService {
	return &SettingsService{
		repo: repo,
		wt:   wt,
	}
}

func (ss *SettingsService) Get(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
	if uid == uuid.Nil {
		return &entity.UserSettings{ThemeColor: repository.DefaultThemeColor}, nil
	}
	s, err := ss.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("settings repository error: " + err.Error())
	}
	return s, nil
}

func (ss *SettingsService) SetTheme(ctx context.Context, uid uuid.UUID, color string) (*entity.UserSettings, error) {
	if uid == uuid.Nil {
		return nil, nil
	}
	color = strings.ToLower(strings.TrimSpace(color))
	if err := validateVar(color, "required,theme_color"); err != nil {
		return nil, err
	}
	return recorded(ctx, ss.wt, uid, tableUserSettings, realtime.OpUpdate, func() (*entity.UserSettings, error) {
		s := entity.UserSettings{UserID: uid, ThemeColor: color}
		if err := ss.repo.Upsert(ctx, &s); err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return nil, err
			}
			return nil, errors.New("settings repository error: " + err.Error())
		}
		return &s, nil
	}, nil)
}
