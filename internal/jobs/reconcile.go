// Package jobs runs scheduled background work of the API process.
package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/limbo/lifeos/internal/metrics"
	"github.com/limbo/lifeos/pkg/entity"
)

// OwnersLister lists users with at least one active habit template.
type OwnersLister interface {
	ListOwnersWithActive(ctx context.Context) ([]uuid.UUID, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, uid uuid.UUID, today time.Time) ([]*entity.HabitInstanceView, error)
}

// NightlyReconcile creates the day's habit instances ahead of the first request,
// through the same idempotent path the habits endpoint uses.
type NightlyReconcile struct {
	owners     OwnersLister
	reconciler Reconciler
	loc        *time.Location
	timeout    time.Duration
	now        func() time.Time
}

func NewNightlyReconcile(owners OwnersLister, reconciler Reconciler, loc *time.Location) *NightlyReconcile {
	if loc == nil {
		loc = time.UTC
	}
	return &NightlyReconcile{
		owners:     owners,
		reconciler: reconciler,
		loc:        loc,
		timeout:    5 * time.Minute,
		now:        time.Now,
	}
}

// Run reconciles every owner. A failing user does not stop the others; the joined
// error is returned at the end.
func (nr *NightlyReconcile) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, nr.timeout)
	defer cancel()
	today := nr.now().In(nr.loc)
	owners, err := nr.owners.ListOwnersWithActive(ctx)
	if err != nil {
		metrics.RecordReconcileRun(false)
		return errors.New("listing habit owners error: " + err.Error())
	}
	var errs []error
	for _, uid := range owners {
		if _, err := nr.reconciler.Reconcile(ctx, uid, today); err != nil {
			slog.Error("scheduled reconcile failed", slog.String("uid", uid.String()), slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}
	metrics.RecordReconcileRun(len(errs) == 0)
	slog.Info("scheduled reconcile finished",
		slog.Int("users", len(owners)),
		slog.Int("failed", len(errs)),
		slog.String("date", today.Format(time.DateOnly)),
	)
	return errors.Join(errs...)
}

// Scheduler wraps a cron runner whose schedule is evaluated in loc.
type Scheduler struct {
	c *cron.Cron
}

func NewScheduler(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		c: cron.New(cron.WithLocation(loc)),
	}
}

// Add registers job under a standard five-field cron spec.
func (s *Scheduler) Add(spec, name string, job func(ctx context.Context) error) error {
	_, err := s.c.AddFunc(spec, func() {
		if err := job(context.Background()); err != nil {
			slog.Error("job failed", slog.String("job", name), slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return errors.New("scheduling " + name + " error: " + err.Error())
	}
	return nil
}

func (s *Scheduler) Start() {
	s.c.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() error {
	<-s.c.Stop().Done()
	return nil
}
