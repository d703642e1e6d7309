package resilience

import (
	"context"
	"time"
)

// Backoff computes the wait before retry number attempt (0-based) and can
// sleep for it while honoring cancellation.
type Backoff struct {
	cfg BackoffConfig
}

func NewBackoff(cfg BackoffConfig) Backoff {
	defaults := DefaultBackoffConfig()
	if cfg.Base <= 0 {
		cfg.Base = defaults.Base
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = defaults.Multiplier
	}
	if cfg.Max <= 0 {
		cfg.Max = defaults.Max
	}
	return Backoff{cfg: cfg}
}

func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	delay := float64(b.cfg.Base)
	for i := 0; i < attempt; i++ {
		delay *= b.cfg.Multiplier
		if delay >= float64(b.cfg.Max) {
			return b.cfg.Max
		}
	}
	return time.Duration(delay)
}

func (b Backoff) Wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(b.Delay(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
