package store

import (
	"context"
	"log/slog"
	"time"

	"approvaldash/internal/dashboard/ports"
)

// Connect selects the approval store for a process. An empty databaseURL
// yields an in-memory store seeded with demo traffic ending at now. The
// returned close function is non-nil on success and nil when err is set.
func Connect(ctx context.Context, databaseURL string, migrate bool, now time.Time, logger *slog.Logger) (ports.Store, func() error, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if databaseURL == "" {
		mem := NewInMemory()
		SeedDemo(mem, now)
		logger.InfoContext(ctx, "using in-memory approval store with demo data")
		return mem, func() error { return nil }, nil
	}

	db, err := Open(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	pg := NewPostgres(db)
	if migrate {
		if err := pg.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		logger.InfoContext(ctx, "approval schema applied")
	}
	logger.InfoContext(ctx, "using postgres approval store")
	return pg, db.Close, nil
}
