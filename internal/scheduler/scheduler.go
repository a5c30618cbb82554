package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type tokenPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Scheduler periodically deletes revoked tokens whose expiry has passed;
// once expired they can no longer authenticate and the row is dead weight.
type Scheduler struct {
	tokens   tokenPurger
	interval time.Duration
	logger   logger.Logger
}

func New(
	tokens tokenPurger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		tokens:   tokens,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	purged, err := s.tokens.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("failed to purge expired tokens",
			logger.String("error", err.Error()),
		)
		return
	}

	if purged > 0 {
		s.logger.Info("expired revoked tokens purged",
			logger.Int64("count", purged),
		)
	}
}
