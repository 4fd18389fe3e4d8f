package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limbo/lifeos/internal/db"
	"github.com/limbo/lifeos/internal/logger"
	"github.com/limbo/lifeos/internal/repository"
	"github.com/limbo/lifeos/internal/service"
	"github.com/limbo/lifeos/pkg/cleanup"
	"github.com/limbo/lifeos/pkg/config"
)

type appContext struct {
	cfg *config.Config
}

func (a *appContext) pool(ctx context.Context) (*pgxpool.Pool, error) {
	return repository.NewPool(ctx, a.cfg)
}

func parseUser(raw string) (uuid.UUID, error) {
	uid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid user id error: " + err.Error())
	}
	return uid, nil
}

// parseDay resolves --date in tz, defaulting to the current day there.
func parseDay(date, tz string, now time.Time) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, errors.New("invalid timezone error: " + err.Error())
	}
	if date == "" {
		return now.In(loc), nil
	}
	day, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return time.Time{}, errors.New("invalid date error: " + err.Error())
	}
	return day, nil
}

type MigrateUpCmd struct{}

func (c *MigrateUpCmd) Run(a *appContext) error {
	conn, err := db.Open(a.cfg.ConnString())
	if err != nil {
		return err
	}
	defer conn.Close()
	return db.RunMigrations(conn)
}

type MigrateDownCmd struct{}

func (c *MigrateDownCmd) Run(a *appContext) error {
	conn, err := db.Open(a.cfg.ConnString())
	if err != nil {
		return err
	}
	defer conn.Close()
	return db.MigrateDown(conn)
}

type ReconcileCmd struct {
	User string `help:"User ID." required:""`
	Date string `help:"Day to reconcile, YYYY-MM-DD. Defaults to today in --tz."`
	TZ   string `help:"IANA timezone of the day." default:"UTC"`
}

func (c *ReconcileCmd) Run(a *appContext) error {
	uid, err := parseUser(c.User)
	if err != nil {
		return err
	}
	day, err := parseDay(c.Date, c.TZ, time.Now())
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	pool, err := a.pool(ctx)
	if err != nil {
		return err
	}
	wt := service.NewWriteThrough(service.NewEventsService(repository.NewLifeEventsRepo(pool), nil), nil)
	habits := service.NewHabitsService(repository.NewHabitTemplatesRepo(pool), repository.NewHabitInstancesRepo(pool), wt)
	instances, err := habits.Reconcile(ctx, uid, day)
	if err != nil {
		return err
	}
	for _, inst := range instances {
		mark := " "
		if inst.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %s\n", mark, inst.Name)
	}
	return nil
}

type StatsCmd struct {
	User string `help:"User ID." required:""`
	TZ   string `help:"IANA timezone for day keys." default:"UTC"`
}

func (c *StatsCmd) Run(a *appContext) error {
	uid, err := parseUser(c.User)
	if err != nil {
		return err
	}
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return errors.New("invalid timezone error: " + err.Error())
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	pool, err := a.pool(ctx)
	if err != nil {
		return err
	}
	stats, err := service.NewStatsService(repository.NewLifeEventsRepo(pool)).Stats(ctx, uid, loc)
	if err != nil {
		return err
	}
	out, err := sonic.ConfigStd.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

var CLI struct {
	Migrate struct {
		Up   MigrateUpCmd   `cmd:"" help:"Apply all pending migrations."`
		Down MigrateDownCmd `cmd:"" help:"Roll back the latest migration."`
	} `cmd:"" help:"Manage the database schema."`
	Reconcile ReconcileCmd `cmd:"" help:"Create a user's habit instances for a day."`
	Stats     StatsCmd     `cmd:"" help:"Print a user's aggregated statistics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lifeosctl"),
		kong.Description("Maintenance commands for the lifeos backend"),
		kong.UsageOnError(),
	)
	cfg := config.New()
	logger.Init(logger.Options{Development: cfg.IsDevelopment(), Out: os.Stderr})
	err := ctx.Run(&appContext{cfg: cfg})
	cleanup.CleanUp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
