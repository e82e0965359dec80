package backup

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler runs the startup / periodic / shutdown backup cadence. Snapshots
// are best effort: a failed copy is logged and the next tick tries again.
type Scheduler struct {
	service  *Service
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(service *Service, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Run snapshots immediately, then on every tick until the context is
// cancelled, and once more on the way out.
func (s *Scheduler) Run(ctx context.Context) {
	s.snapshot("startup")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.snapshot("periodic")
		case <-ctx.Done():
			s.snapshot("shutdown")
			return
		}
	}
}

func (s *Scheduler) snapshot(reason string) {
	if _, err := s.service.Snapshot(); err != nil {
		s.logger.Error("scheduled backup failed", "reason", reason, "error", err)
		return
	}
	s.logger.Info("scheduled backup completed", "reason", reason)
}
