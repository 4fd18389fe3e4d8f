package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/internal/session"
	"github.com/limbo/lifeos/pkg/httputil"
)

type CreateHabitRequest struct {
	Name string `json:"name"`
}

type ToggleHabitRequest struct {
	Completed bool `json:"completed"`
}

type CreateGoalRequest struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	RewardPoints int     `json:"reward_points"`
}

// GetTodayHabits reconciles lazily: the first read of the day creates the instances.
func (s *Server) GetTodayHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	today, ok := s.today(w, r)
	if !ok {
		return
	}
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	habits, err := s.habitsService.Reconcile(ctx, uid, today)
	if err != nil {
		writeServiceError(w, logger, "get today habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habits": habits})
	logger.Info("today habits provided")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	var req CreateHabitRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	tmpl, err := s.habitsService.CreateTemplate(ctx, uid, service.CreateTemplateRequest{Name: req.Name})
	if err != nil {
		writeServiceError(w, logger, "create habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, tmpl)
	logger.Info("habit template created")
}

func (s *Server) GetHabitTemplates(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	templates, err := s.habitsService.ListTemplates(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get habit templates", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"templates": templates})
}

func (s *Server) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	today, ok := s.today(w, r)
	if !ok {
		return
	}
	var req ToggleHabitRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	habits, err := s.habitsService.Toggle(ctx, uid, id, req.Completed, today)
	if err != nil {
		writeServiceError(w, logger, "toggle habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habits": habits})
	logger.Info("habit toggled")
}

func (s *Server) RetireHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	if err := s.habitsService.Retire(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "retire habit", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("habit template retired")
}

func (s *Server) GetTodayGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	today, ok := s.today(w, r)
	if !ok {
		return
	}
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	goals, err := s.goalsService.ListToday(ctx, uid, today)
	if err != nil {
		writeServiceError(w, logger, "get today goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"goals": goals})
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	today, ok := s.today(w, r)
	if !ok {
		return
	}
	var req CreateGoalRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	goal, err := s.goalsService.Create(ctx, uid, service.CreateGoalRequest{
		Title:        req.Title,
		Description:  req.Description,
		RewardPoints: req.RewardPoints,
	}, today)
	if err != nil {
		writeServiceError(w, logger, "create goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created")
}

func (s *Server) ToggleGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	goal, err := s.goalsService.Toggle(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "toggle goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
	logger.Info("goal toggled")
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	today, ok := s.today(w, r)
	if !ok {
		return
	}
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	streak, err := s.goalsService.Streak(ctx, uid, today)
	if err != nil {
		writeServiceError(w, logger, "get streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"streak": streak})
}

func (s *Server) GetBalance(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	balance, err := s.pointsService.Balance(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get balance", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"balance": balance.Balance})
}

func (s *Server) GetTodayPoints(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	today, ok := s.today(w, r)
	if !ok {
		return
	}
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	points, err := s.pointsService.Today(ctx, uid, today)
	if err != nil {
		writeServiceError(w, logger, "get today points", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"points": points})
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	today, ok := s.today(w, r)
	if !ok {
		return
	}
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.statsService.Stats(ctx, uid, today.Location())
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}
