// @title Life OS API
// @description API for the personal life tracker "lifeos"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/lifeos/internal/api"
	"github.com/limbo/lifeos/internal/db"
	"github.com/limbo/lifeos/internal/jobs"
	"github.com/limbo/lifeos/internal/logger"
	"github.com/limbo/lifeos/internal/realtime"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/internal/session"
	"github.com/limbo/lifeos/pkg/cleanup"
	"github.com/limbo/lifeos/pkg/config"
	jwtservice "github.com/limbo/lifeos/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	log := logger.Init(logger.Options{
		Development: cfg.IsDevelopment(),
		SentryDSN:   cfg.SentryDSN,
		File:        cfg.LogFile,
	})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg)
	stop()
	cleanup.CleanUp()
	if err != nil {
		log.Error("api stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires the process and serves until ctx is cancelled. Startup failures are
// returned before anything is served.
func run(ctx context.Context, cfg *config.Config) error {
	loc, err := time.LoadLocation(cfg.ReconcileTimezone)
	if err != nil {
		return errors.New("invalid reconcile timezone error: " + err.Error())
	}
	if cfg.MigrateOnStart {
		sqlDB, err := db.Open(cfg.ConnString())
		if err != nil {
			return errors.New("opening migrations connection error: " + err.Error())
		}
		err = db.RunMigrations(sqlDB)
		sqlDB.Close()
		if err != nil {
			return errors.New("migrations error: " + err.Error())
		}
	}

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	pool, err := repository.NewPool(connectCtx, cfg)
	cancel()
	if err != nil {
		return errors.New("connecting to database error: " + err.Error())
	}

	hub := realtime.NewHub()
	cleanup.Register(&cleanup.Job{Name: "closing realtime hub", F: func() error {
		hub.Close()
		return nil
	}})
	sessions := session.NewManager()
	cleanup.Register(&cleanup.Job{Name: "closing session manager", F: func() error {
		sessions.Close()
		return nil
	}})
	go func() {
		if err := realtime.NewListener(pool, hub).Run(ctx); err != nil {
			slog.Error("realtime listener stopped", slog.String("error", err.Error()))
		}
	}()

	templatesRepo := repository.NewHabitTemplatesRepo(pool)
	goalsRepo := repository.NewGoalsRepo(pool)
	pointsRepo := repository.NewPointsRepo(pool)
	connectionsRepo := repository.NewConnectionsRepo(pool)

	events := service.NewEventsService(repository.NewLifeEventsRepo(pool), hub)
	wt := service.NewWriteThrough(events, hub)
	habitsService := service.NewHabitsService(templatesRepo, repository.NewHabitInstancesRepo(pool), wt)

	scheduler := jobs.NewScheduler(loc)
	nightly := jobs.NewNightlyReconcile(templatesRepo, habitsService, loc)
	if err := scheduler.Add(cfg.ReconcileSchedule, "nightly reconcile", nightly.Run); err != nil {
		return errors.New("scheduling reconcile error: " + err.Error())
	}
	scheduler.Start()
	cleanup.Register(&cleanup.Job{Name: "stopping scheduler", F: scheduler.Stop})

	serv := api.New(&api.ServicesList{
		UserService:          service.NewUserService(repository.NewUsersRepo(pool), sessions),
		HabitsService:        habitsService,
		GoalsService:         service.NewGoalsService(goalsRepo, wt),
		PointsService:        service.NewPointsService(pointsRepo, goalsRepo),
		StatsService:         service.NewStatsService(repository.NewLifeEventsRepo(pool)),
		TasksService:         service.NewTasksService(repository.NewTasksRepo(pool), wt),
		MentalService:        service.NewMentalService(repository.NewMoodsRepo(pool), repository.NewJournalRepo(pool), wt),
		PhysicalService:      service.NewPhysicalService(repository.NewWorkoutsRepo(pool), wt),
		SchoolService:        service.NewSchoolService(repository.NewStudySessionsRepo(pool), wt),
		RomanceService:       service.NewRomanceService(repository.NewRomanceRepo(pool), connectionsRepo, wt),
		EntertainmentService: service.NewEntertainmentService(repository.NewEntertainmentRepo(pool), wt),
		RewardsService:       service.NewRewardsService(repository.NewRewardsRepo(pool), pointsRepo, wt),
		SettingsService:      service.NewSettingsService(repository.NewSettingsRepo(pool), wt),
		JwtService:           jwtservice.New(cfg.JWTSecret, cfg.JWTTTL),
		Sessions:             sessions,
		Hub:                  hub,
		AuthLimiter:          api.NewRateLimiter(cfg.AuthRatePerSecond, cfg.AuthRateBurst),
	})
	return serv.Run(ctx, cfg.APIAddress)
}
