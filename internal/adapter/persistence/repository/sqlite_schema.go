package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// MigrateSQLite creates the task store schema. It is idempotent.
//
// The partial unique indexes are the storage-level backstop of the timer
// invariants: one active task per operator, one per workstation, one open log
// per task.
func MigrateSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			variant_id TEXT NOT NULL,
			service_id TEXT NOT NULL,
			operator_id TEXT NOT NULL,
			workstation_id TEXT NOT NULL,
			status TEXT NOT NULL,
			estimated_time_hours REAL NOT NULL DEFAULT 0,
			started_at TEXT,
			completed_at TEXT,
			cancelled_at TEXT,
			actual_hours REAL,
			variance_percent REAL,
			actual_cost REAL,
			version INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS interval_logs (
			id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT,
			note TEXT NOT NULL DEFAULT '',
			manual INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			FOREIGN KEY(task_id) REFERENCES tasks(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS audit_entries (
			id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL,
			log_id TEXT NOT NULL DEFAULT '',
			action TEXT NOT NULL,
			actor_id TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			FOREIGN KEY(task_id) REFERENCES tasks(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS variants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			product_name TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS variant_services (
			variant_id TEXT NOT NULL,
			service_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			estimated_time_hours REAL NOT NULL DEFAULT 0,
			PRIMARY KEY(variant_id, service_id),
			FOREIGN KEY(variant_id) REFERENCES variants(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS variant_workstations (
			variant_id TEXT NOT NULL,
			workstation_id TEXT NOT NULL,
			PRIMARY KEY(variant_id, workstation_id),
			FOREIGN KEY(variant_id) REFERENCES variants(id) ON DELETE CASCADE
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_tasks_active_operator ON tasks(operator_id) WHERE status = 'active';`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_tasks_active_workstation ON tasks(workstation_id) WHERE status = 'active';`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_operator_created ON tasks(operator_id, created_at DESC);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_interval_logs_open ON interval_logs(task_id) WHERE ended_at IS NULL;`,
		`CREATE INDEX IF NOT EXISTS idx_interval_logs_task_started ON interval_logs(task_id, started_at);`,
		`CREATE INDEX IF NOT EXISTS idx_audit_entries_task_created ON audit_entries(task_id, created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_variant_workstations_ws ON variant_workstations(workstation_id);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return nil
}
