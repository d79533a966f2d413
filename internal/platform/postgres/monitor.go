package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"sync/atomic"
	"time"
)

// StatusMonitor tracks whether the database is reachable. It pings the
// database on a fixed interval and caches the result so that request-path
// readiness checks never touch the database themselves.
type StatusMonitor struct {
	db       *sql.DB
	interval time.Duration
	timeout  time.Duration
	ready    atomic.Bool
	logger   *slog.Logger
}

// NewStatusMonitor creates a monitor for the given database connection.
// The monitor starts in the not-ready state until the first successful ping.
func NewStatusMonitor(db *sql.DB, interval time.Duration, logger *slog.Logger) *StatusMonitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusMonitor{
		db:       db,
		interval: interval,
		timeout:  5 * time.Second,
		logger:   logger.With(slog.String("component", "status_monitor")),
	}
}

// Ready reports the last observed database state.
func (m *StatusMonitor) Ready() bool {
	return m.ready.Load()
}

// Run pings the database until the context is canceled.
// It performs one ping immediately so readiness is established before
// the first interval elapses.
func (m *StatusMonitor) Run(ctx context.Context) {
	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *StatusMonitor) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.db.PingContext(pingCtx)
	wasReady := m.ready.Swap(err == nil)

	switch {
	case err != nil && wasReady:
		m.logger.Warn("database became unreachable", "error", err)
	case err == nil && !wasReady:
		m.logger.Info("database is ready")
	}
}
