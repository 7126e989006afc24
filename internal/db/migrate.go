package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Tables lists every table the migrations create, parents before children.
var Tables = []string{"teams", "users", "team_histories", "projects", "project_tasks", "work_logs"}

// Migrate runs all schema migrations. Statements are idempotent so the full
// set is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		is_work_tracked INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		team_id TEXT REFERENCES teams(id) ON DELETE SET NULL,
		blocked INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS team_histories (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		team_id TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		start_date TEXT NOT NULL,
		end_date TEXT,
		CHECK (end_date IS NULL OR end_date >= start_date)
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT '',
		plan_end_date TEXT,
		end_date TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS project_tasks (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		plan_start_date TEXT,
		plan_end_date TEXT,
		start_date TEXT,
		end_date TEXT,
		progress_code TEXT NOT NULL DEFAULT '',
		is_progress_eligible INTEGER NOT NULL DEFAULT 1,
		planning_total_hours REAL NOT NULL DEFAULT 0,
		is_completed INTEGER NOT NULL DEFAULT 0
	)`,

	// Work logs keep user/team/task as plain ids: logs of removed users still
	// count toward their team's hours.
	`CREATE TABLE IF NOT EXISTS work_logs (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		team_id TEXT,
		task_id TEXT NOT NULL DEFAULT '',
		work_date TEXT NOT NULL,
		work_hours REAL NOT NULL DEFAULT 0,
		non_billable_hours REAL NOT NULL DEFAULT 0,
		overtime_hours REAL NOT NULL DEFAULT 0,
		is_deleted INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_team_histories_user ON team_histories(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_team_histories_range ON team_histories(start_date, end_date)`,
	`CREATE INDEX IF NOT EXISTS idx_project_tasks_project ON project_tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_work_logs_date ON work_logs(work_date)`,
	`CREATE INDEX IF NOT EXISTS idx_work_logs_user ON work_logs(user_id)`,
}
