package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_drivers",
		SQL: `CREATE TABLE IF NOT EXISTS drivers (
  id             UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  company_id     UUID          NOT NULL,
  user_id        UUID          NOT NULL,
  license_number TEXT          NOT NULL,
  license_class  TEXT,
  license_expiry DATE,
  vehicle_type   TEXT,
  vehicle_vin    TEXT,
  vehicle_plate  TEXT,
  status         TEXT          NOT NULL DEFAULT 'active'
                 CHECK (status IN ('active', 'inactive', 'on_leave', 'suspended')),
  rating         NUMERIC(3,2)  NOT NULL DEFAULT 0,
  total_loads    INTEGER       NOT NULL DEFAULT 0,
  total_miles    NUMERIC(12,2) NOT NULL DEFAULT 0,
  created_at     TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ   NOT NULL DEFAULT now(),
  UNIQUE (company_id, user_id)
);`,
	},
	{
		Name: "create_index_drivers_company_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_drivers_company_status ON drivers (company_id, status);`,
	},
	{
		Name: "create_index_drivers_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_drivers_created_at ON drivers (company_id, created_at);`,
	},
	{
		Name: "create_table_driver_documents",
		SQL: `CREATE TABLE IF NOT EXISTS driver_documents (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  driver_id    UUID        NOT NULL REFERENCES drivers (id) ON DELETE CASCADE,
  type         TEXT        NOT NULL
               CHECK (type IN ('license', 'insurance', 'medical_cert', 'background_check')),
  filename     TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  content_type TEXT        NOT NULL,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  expiry_date  DATE,
  uploaded_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_driver_documents_driver",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_driver_documents_driver ON driver_documents (driver_id, uploaded_at);`,
	},
}

// sentinelQuery reports whether the schema has been applied. driver_documents
// is created last, so its presence means every step ran.
const sentinelQuery = "SELECT to_regclass('public.driver_documents') IS NOT NULL"

// EnsureMigrated creates the driver schema when the sentinel table is missing.
// Steps are idempotent, so a run interrupted halfway is finished by the next start.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *slog.Logger, dbHost string) error {
	start := time.Now()
	log := logger.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "status", "starting")

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress", "steps", len(steps))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_migration_success", "status", "success", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
