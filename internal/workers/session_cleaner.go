package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// SessionCleaner periodically removes expired sessions.
type SessionCleaner struct {
	accounts service.AccountService
	interval time.Duration

	logger *logger.Logger
}

func NewSessionCleaner(accounts service.AccountService, interval time.Duration, logger *logger.Logger) *SessionCleaner {
	return &SessionCleaner{
		accounts: accounts,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is cancelled. A failed sweep is
// logged and retried on the next tick.
func (c *SessionCleaner) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Info().Dur("interval", c.interval).Msg("session cleaner started")
	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("session cleaner stopped")
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			c.sweep(ctx)
		}
	}
}

func (c *SessionCleaner) sweep(ctx context.Context) {
	deleted, err := c.accounts.DeleteExpiredSessions(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "*SessionCleaner.sweep").Msg("expired sessions were not deleted")
		return
	}
	if deleted > 0 {
		c.logger.Info().Int64("deleted", deleted).Msg("expired sessions deleted")
	}
}
