package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup.
// A nil pool means the audit database is disabled.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		slog.Info("Skipping database migrations: no audit database configured")
		return nil
	}
	slog.Info("Starting database migrations")

	for _, m := range Migrations() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists the schema steps in order.
func Migrations() []Migration {
	return []Migration{
		{Name: "create_improvement_requests", Up: createImprovementRequests},
		{Name: "index_improvement_requests_created_at", Up: indexImprovementRequestsCreatedAt},
	}
}

func createImprovementRequests(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS improvement_requests (
			id           UUID PRIMARY KEY,
			field_type   TEXT NOT NULL DEFAULT '',
			provider     TEXT NOT NULL DEFAULT '',
			status       TEXT NOT NULL,
			input_chars  INTEGER NOT NULL DEFAULT 0,
			output_chars INTEGER NOT NULL DEFAULT 0,
			duration_ms  BIGINT NOT NULL DEFAULT 0,
			error        TEXT NOT NULL DEFAULT '',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	_, err := pool.Exec(ctx, query)
	return err
}

// indexImprovementRequestsCreatedAt is best effort: a failure is logged and
// does not stop startup.
func indexImprovementRequestsCreatedAt(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE INDEX IF NOT EXISTS improvement_requests_created_at_idx
		ON improvement_requests (created_at);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		slog.Warn("Error creating created_at index (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully ensured created_at index on improvement_requests")
	return nil
}
