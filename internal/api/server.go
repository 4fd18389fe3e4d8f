package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/lifeos/internal/metrics"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/internal/session"
	"github.com/limbo/lifeos/pkg/httputil"
)

type Server struct {
	mx                   *chi.Mux
	userService          service.UserServiceI
	habitsService        service.HabitsServiceI
	goalsService         service.GoalsServiceI
	pointsService        service.PointsServiceI
	statsService         service.StatsServiceI
	tasksService         service.TasksServiceI
	mentalService        service.MentalServiceI
	physicalService      service.PhysicalServiceI
	schoolService        service.SchoolServiceI
	romanceService       service.RomanceServiceI
	entertainmentService service.EntertainmentServiceI
	rewardsService       service.RewardsServiceI
	settingsService      service.SettingsServiceI
	jwtService           JWTServiceI
	sessions             *session.Manager
	hub                  *realtime.Hub
	authLimiter          *RateLimiter
	now                  func() time.Time
}

type ServicesList struct {
	UserService          service.UserServiceI
	HabitsService        service.HabitsServiceI
	GoalsService         service.GoalsServiceI
	PointsService        service.PointsServiceI
	StatsService         service.StatsServiceI
	TasksService         service.TasksServiceI
	MentalService        service.MentalServiceI
	PhysicalService      service.PhysicalServiceI
	SchoolService        service.SchoolServiceI
	RomanceService       service.RomanceServiceI
	EntertainmentService service.EntertainmentServiceI
	RewardsService       service.RewardsServiceI
	SettingsService      service.SettingsServiceI
	JwtService           JWTServiceI
	Sessions             *session.Manager
	Hub                  *realtime.Hub
	// Nil disables rate limiting of the auth endpoints
	AuthLimiter *RateLimiter
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                   chi.NewMux(),
		userService:          servicesOptions.UserService,
		habitsService:        servicesOptions.HabitsService,
		goalsService:         servicesOptions.GoalsService,
		pointsService:        servicesOptions.PointsService,
		statsService:         servicesOptions.StatsService,
		tasksService:         servicesOptions.TasksService,
		mentalService:        servicesOptions.MentalService,
		physicalService:      servicesOptions.PhysicalService,
		schoolService:        servicesOptions.SchoolService,
		romanceService:       servicesOptions.RomanceService,
		entertainmentService: servicesOptions.EntertainmentService,
		rewardsService:       servicesOptions.RewardsService,
		settingsService:      servicesOptions.SettingsService,
		jwtService:           servicesOptions.JwtService,
		sessions:             servicesOptions.Sessions,
		hub:                  servicesOptions.Hub,
		authLimiter:          servicesOptions.AuthLimiter,
		now:                  time.Now,
	}
	s.MountEndpoints()
	return s
}

func (s *Server) MountEndpoints() {
	s.mx.Use(metrics.InstrumentHandler)
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Method(http.MethodGet, "/metrics", metrics.Handler())
	s.mx.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if s.authLimiter != nil {
				r.Use(s.authLimiter.Handler)
			}
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
			r.Group(func(r chi.Router) {
				r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
				r.Post("/logout", s.Logout)
				r.Delete("/account", s.DeleteAccount)
			})
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/habits/today", s.GetTodayHabits)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits/templates", s.GetHabitTemplates)
			r.Patch("/habits/instances/{id}", s.ToggleHabit)
			r.Delete("/habits/templates/{id}", s.RetireHabit)

			r.Get("/goals/today", s.GetTodayGoals)
			r.Post("/goals", s.CreateGoal)
			r.Patch("/goals/{id}/toggle", s.ToggleGoal)
			r.Get("/goals/streak", s.GetStreak)

			r.Get("/points", s.GetBalance)
			r.Get("/points/today", s.GetTodayPoints)
			r.Get("/stats", s.GetStats)

			r.Get("/tasks", s.GetTasks)
			r.Post("/tasks", s.CreateTask)
			r.Patch("/tasks/{id}/toggle", s.ToggleTask)
			r.Delete("/tasks/{id}", s.DeleteTask)

			r.Get("/moods", s.GetMoods)
			r.Post("/moods", s.LogMood)
			r.Get("/journal", s.GetJournal)
			r.Post("/journal", s.CreateJournalEntry)

			r.Get("/workouts", s.GetWorkouts)
			r.Post("/workouts", s.LogWorkout)

			r.Get("/study/sessions", s.GetStudySessions)
			r.Post("/study/sessions", s.FinishStudySession)

			r.Get("/romance", s.GetRomanceEntries)
			r.Post("/romance", s.CreateRomanceEntry)
			r.Get("/connections", s.GetConnections)
			r.Post("/connections", s.CreateConnection)
			r.Patch("/connections/{id}/touch", s.TouchConnection)

			r.Get("/entertainment", s.GetMedia)
			r.Post("/entertainment", s.CreateMedia)

			r.Get("/rewards", s.GetRewards)
			r.Post("/rewards/{id}/redeem", s.Redeem)
			r.Get("/redemptions", s.GetRedemptions)

			r.Get("/settings", s.GetSettings)
			r.Put("/settings/theme", s.SetTheme)

			r.Get("/realtime", s.Realtime)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err, ok := <-errCh:
		if ok {
			return errors.New("serving error: " + err.Error())
		}
		return nil
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("shutting down server error: " + err.Error())
	}
	slog.Info("api server stopped")
	return nil
}
