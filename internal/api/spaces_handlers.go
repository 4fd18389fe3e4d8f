package api

import (
	"net/http"
	"time"

	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/internal/session"
	"github.com/limbo/lifeos/pkg/httputil"
)

type CreateTaskRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type LogMoodRequest struct {
	Mood string `json:"mood"`
	Note string `json:"note"`
}

type CreateJournalRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type LogWorkoutRequest struct {
	Exercise string     `json:"exercise"`
	Sets     int        `json:"sets"`
	Reps     int        `json:"reps"`
	Notes    string     `json:"notes"`
	Date     *time.Time `json:"date"`
}

type FinishSessionRequest struct {
	Kind     string `json:"kind"`
	Duration int    `json:"duration"`
}

type CreateRomanceRequest struct {
	Title string     `json:"title"`
	Notes string     `json:"notes"`
	Date  *time.Time `json:"date"`
}

type CreateConnectionRequest struct {
	Name             string     `json:"name"`
	LastContact      *time.Time `json:"last_contact"`
	ReminderInterval int        `json:"reminder_interval"`
}

type CreateMediaRequest struct {
	Title  string `json:"title"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
	Rating *int   `json:"rating"`
	Notes  string `json:"notes"`
}

type SetThemeRequest struct {
	ThemeColor string `json:"theme_color"`
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	tasks, err := s.tasksService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"tasks": tasks})
}

func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	var req CreateTaskRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	task, err := s.tasksService.Create(ctx, uid, service.CreateTaskRequest{Text: req.Text, Category: req.Category})
	if err != nil {
		writeServiceError(w, logger, "create task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("task created")
}

func (s *Server) ToggleTask(w http.ResponseWriter, r *http.Request) {
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
	task, err := s.tasksService.Toggle(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "toggle task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
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
	if err := s.tasksService.Delete(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "delete task", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("task deleted")
}

func (s *Server) GetMoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	moods, err := s.mentalService.ListMoods(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get moods", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"moods": moods})
}

func (s *Server) LogMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	var req LogMoodRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	mood, err := s.mentalService.LogMood(ctx, uid, service.LogMoodRequest{Mood: req.Mood, Note: req.Note})
	if err != nil {
		writeServiceError(w, logger, "log mood", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, mood)
	logger.Info("mood logged")
}

func (s *Server) GetJournal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	entries, err := s.mentalService.ListJournal(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get journal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	var req CreateJournalRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	entry, err := s.mentalService.CreateJournalEntry(ctx, uid, service.CreateJournalRequest{Title: req.Title, Content: req.Content})
	if err != nil {
		writeServiceError(w, logger, "create journal entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
}

func (s *Server) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	workouts, err := s.physicalService.ListWorkouts(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get workouts", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"workouts": workouts})
}

func (s *Server) LogWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	today, ok := s.today(w, r)
	if !ok {
		return
	}
	var req LogWorkoutRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	workout, err := s.physicalService.LogWorkout(ctx, uid, service.LogWorkoutRequest{
		Exercise: req.Exercise,
		Sets:     req.Sets,
		Reps:     req.Reps,
		Notes:    req.Notes,
		Date:     req.Date,
	}, today)
	if err != nil {
		writeServiceError(w, logger, "log workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	logger.Info("workout logged")
}

func (s *Server) GetStudySessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	sessions, err := s.schoolService.ListSessions(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get study sessions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"sessions": sessions})
}

func (s *Server) FinishStudySession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	var req FinishSessionRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	sess, err := s.schoolService.FinishSession(ctx, uid, service.FinishSessionRequest{Kind: req.Kind, Duration: req.Duration})
	if err != nil {
		writeServiceError(w, logger, "finish study session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, sess)
	logger.Info("study session finished")
}

func (s *Server) GetRomanceEntries(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	entries, err := s.romanceService.ListEntries(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get romance entries", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) CreateRomanceEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	today, ok := s.today(w, r)
	if !ok {
		return
	}
	var req CreateRomanceRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	entry, err := s.romanceService.CreateEntry(ctx, uid, service.CreateRomanceRequest{
		Title: req.Title,
		Notes: req.Notes,
		Date:  req.Date,
	}, today)
	if err != nil {
		writeServiceError(w, logger, "create romance entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
}

func (s *Server) GetConnections(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	now, ok := s.today(w, r)
	if !ok {
		return
	}
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	conns, err := s.romanceService.ListConnections(ctx, uid, now)
	if err != nil {
		writeServiceError(w, logger, "get connections", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"connections": conns})
}

func (s *Server) CreateConnection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	now, ok := s.today(w, r)
	if !ok {
		return
	}
	var req CreateConnectionRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	conn, err := s.romanceService.CreateConnection(ctx, uid, service.CreateConnectionRequest{
		Name:             req.Name,
		LastContact:      req.LastContact,
		ReminderInterval: req.ReminderInterval,
	}, now)
	if err != nil {
		writeServiceError(w, logger, "create connection", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, conn)
}

func (s *Server) TouchConnection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	now, ok := s.today(w, r)
	if !ok {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	conn, err := s.romanceService.TouchConnection(ctx, uid, id, now)
	if err != nil {
		writeServiceError(w, logger, "touch connection", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, conn)
}

func (s *Server) GetMedia(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	items, err := s.entertainmentService.List(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get media", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) CreateMedia(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	var req CreateMediaRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	item, err := s.entertainmentService.Create(ctx, uid, service.CreateMediaRequest{
		Title:  req.Title,
		Kind:   req.Kind,
		Status: req.Status,
		Rating: req.Rating,
		Notes:  req.Notes,
	})
	if err != nil {
		writeServiceError(w, logger, "create media", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, item)
	logger.Info("media item created")
}

func (s *Server) GetRewards(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	rewards, err := s.rewardsService.ListRewards(ctx)
	if err != nil {
		writeServiceError(w, logger, "get rewards", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"rewards": rewards})
}

func (s *Server) Redeem(w http.ResponseWriter, r *http.Request) {
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
	redemption, err := s.rewardsService.Redeem(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "redeem reward", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, redemption)
	logger.Info("reward redeemed")
}

func (s *Server) GetRedemptions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	list, err := s.rewardsService.ListRedemptions(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get redemptions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"redemptions": list})
}

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := session.CurrentUser(r.Context())
	ctx, cancel := requestCtx()
	defer cancel()
	settings, err := s.settingsService.Get(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get settings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
}

func (s *Server) SetTheme(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := writer(w, r)
	if !ok {
		return
	}
	var req SetThemeRequest
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := requestCtx()
	defer cancel()
	settings, err := s.settingsService.SetTheme(ctx, uid, req.ThemeColor)
	if err != nil {
		writeServiceError(w, logger, "set theme", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("theme updated")
}
