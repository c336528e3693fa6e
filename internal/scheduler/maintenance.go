package scheduler

import (
	"context"
	"database/sql"
	"time"

	"github.com/klemart/markd/internal/logger"
)

const (
	// DefaultMaintenanceInterval is how often SQLite upkeep runs
	DefaultMaintenanceInterval = 24 * time.Hour
)

// Maintenance runs periodic SQLite upkeep: refreshing the query planner
// statistics and checkpointing the WAL so it does not grow unbounded.
type Maintenance struct {
	db       *sql.DB
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewMaintenance creates the maintenance job.
func NewMaintenance(db *sql.DB, log logger.Logger, interval time.Duration) *Maintenance {
	if interval <= 0 {
		interval = DefaultMaintenanceInterval
	}
	return &Maintenance{
		db:       db,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic maintenance process
func (m *Maintenance) Start(ctx context.Context) error {
	// Run immediately on start
	if err := m.Run(ctx); err != nil {
		m.logger.Warn("initial database maintenance failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(m.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.Run(ctx); err != nil {
					m.logger.Error("database maintenance failed",
						logger.Error(err))
				}
			case <-m.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the maintenance job
func (m *Maintenance) Stop() {
	close(m.stopCh)
}

// Run performs one maintenance pass.
func (m *Maintenance) Run(ctx context.Context) error {
	start := time.Now()

	if _, err := m.db.ExecContext(ctx, `ANALYZE`); err != nil {
		return err
	}
	// wal_checkpoint is a no-op when WAL mode is unavailable (in-memory DBs).
	if _, err := m.db.ExecContext(ctx, `PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		return err
	}

	m.logger.Info("database maintenance completed",
		logger.Duration("elapsed", time.Since(start)))
	return nil
}
