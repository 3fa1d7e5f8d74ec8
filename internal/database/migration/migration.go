// Package migration creates the console's own schema on startup.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"karirkit/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinel is the table whose presence means the schema is in place.
const sentinel = "public.column_preferences"

var steps = []migrationStep{
	{
		Name: "create_table_column_preferences",
		SQL: `CREATE TABLE IF NOT EXISTS column_preferences (
  client_id  TEXT        NOT NULL,
  resource   TEXT        NOT NULL,
  hidden     JSONB       NOT NULL DEFAULT '[]'::jsonb,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (client_id, resource)
);`,
	},
	{
		Name: "create_index_column_preferences_updated_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_column_preferences_updated_at ON column_preferences (updated_at);`,
	},
}

// EnsureMigrated runs every step unless the sentinel table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logging.Logger) error {
	start := time.Now()
	log = log.With("component", "database")

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinel).Scan(&exists)
	if err != nil {
		log.Error(ctx, "db migration failed", "event", "db_migration_failed",
			"error", err.Error(), "duration_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info(ctx, "schema already exists, skipping migration", "event", "db_migration_skip",
			"duration_ms", time.Since(start).Milliseconds())
		return nil
	}

	log.Info(ctx, "db migration started", "event", "db_migration_start", "steps", len(steps))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error(ctx, "db migration failed", "event", "db_migration_failed",
				"migration_step", step.Name,
				"error", err.Error(),
				"step_duration_ms", time.Since(stepStart).Milliseconds())
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info(ctx, "db migration step", "event", "db_migration_step",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds())
	}

	log.Info(ctx, "db migration finished", "event", "db_migration_success",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
