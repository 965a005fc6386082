// Package sweeper expires orders whose payment window has elapsed and purges
// expired orders once they have aged past the cleanup window.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/status"
)

const (
	defaultInterval      = time.Minute
	defaultCleanupWindow = 24 * time.Hour
	sweepTimeout         = 30 * time.Second
)

type Store interface {
	ExpireOverdue(ctx context.Context, now time.Time, from []status.Status) ([]entities.Order, error)
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, events []entities.OrderEvent) error
}

type Config struct {
	Interval      time.Duration
	CleanupWindow time.Duration
}

type Sweeper struct {
	logger    *slog.Logger
	store     Store
	events    EventPublisher
	cfg       Config
	now       func() time.Time
	scheduler gocron.Scheduler
}

func New(logger *slog.Logger, store Store, events EventPublisher, cfg Config) *Sweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.CleanupWindow <= 0 {
		cfg.CleanupWindow = defaultCleanupWindow
	}
	return &Sweeper{
		logger: logger.With(slog.String("worker", "sweeper")),
		store:  store,
		events: events,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Start schedules the sweep on a fixed interval. A tick that would overlap a
// running sweep is skipped until the next slot.
func (s *Sweeper) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.cfg.Interval),
		gocron.NewTask(func() { s.Sweep(ctx) }),
		gocron.WithName("expire-orders"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	s.scheduler = scheduler
	scheduler.Start()
	s.logger.Info("sweeper started", slog.String("interval", s.cfg.Interval.String()))
	return nil
}

func (s *Sweeper) Stop() error {
	if s.scheduler == nil {
		return nil
	}
	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to stop scheduler: %w", err)
	}
	return nil
}

type Result struct {
	Expired int
	Purged  int64
}

// Sweep runs one pass. Failures are logged and left for the next tick.
func (s *Sweeper) Sweep(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	start := time.Now()
	defer func() { sweepDuration.Observe(time.Since(start).Seconds()) }()

	now := s.now()
	var res Result

	expired, err := s.store.ExpireOverdue(ctx, now, status.Expirable())
	if err != nil {
		sweepErrors.WithLabelValues("expire").Inc()
		s.logger.ErrorContext(ctx, "failed to expire orders", slog.Any("error", err))
	} else if len(expired) > 0 {
		res.Expired = len(expired)
		ordersExpired.Add(float64(len(expired)))
		s.logger.InfoContext(ctx, "orders expired", slog.Int("count", len(expired)))
		s.publish(ctx, expired, now)
	}

	purged, err := s.store.PurgeExpired(ctx, now.Add(-s.cfg.CleanupWindow))
	if err != nil {
		sweepErrors.WithLabelValues("purge").Inc()
		s.logger.ErrorContext(ctx, "failed to purge expired orders", slog.Any("error", err))
	} else if purged > 0 {
		res.Purged = purged
		ordersPurged.Add(float64(purged))
		s.logger.InfoContext(ctx, "expired orders purged", slog.Int64("count", purged))
	}

	return res
}

func (s *Sweeper) publish(ctx context.Context, orders []entities.Order, at time.Time) {
	if s.events == nil {
		return
	}
	evs := make([]entities.OrderEvent, 0, len(orders))
	for _, o := range orders {
		evs = append(evs, entities.OrderEvent{
			Type:       entities.EventOrderExpired,
			OrderNo:    o.OrderNo,
			UserID:     o.UserID,
			Status:     status.Expired,
			Total:      o.Total,
			Currency:   o.Currency,
			OccurredAt: at,
		})
	}
	if err := s.events.Publish(ctx, evs); err != nil {
		s.logger.WarnContext(ctx, "failed to publish expiry events", slog.Any("error", err))
	}
}
