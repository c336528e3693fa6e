package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/klemart/markd/internal/logger"
	"github.com/klemart/markd/internal/store/sqlite"
)

func TestMaintenance_Run(t *testing.T) {
	d, err := sqlite.Open("file:maint?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	m := NewMaintenance(d, logger.New("error", false), time.Hour)
	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestMaintenance_StartStop(t *testing.T) {
	d, err := sqlite.Open("file:maint_startstop?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewMaintenance(d, logger.New("error", false), time.Hour)
	if err := m.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	m.Stop()
}

func TestNewMaintenance_DefaultInterval(t *testing.T) {
	m := NewMaintenance(nil, logger.New("error", false), 0)
	if m.interval != DefaultMaintenanceInterval {
		t.Fatalf("interval = %v, want %v", m.interval, DefaultMaintenanceInterval)
	}
}
