package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/teamload/internal/db"
	"github.com/alexanderramin/teamload/internal/domain"
)

// SQLiteWorkLogRepo implements WorkLogRepo using a SQLite database.
type SQLiteWorkLogRepo struct {
	db db.DBTX
}

func NewSQLiteWorkLogRepo(conn db.DBTX) *SQLiteWorkLogRepo {
	return &SQLiteWorkLogRepo{db: conn}
}

func (r *SQLiteWorkLogRepo) Create(ctx context.Context, e *domain.WorkLogEntry) error {
	query := `INSERT INTO work_logs (id, user_id, team_id, task_id, work_date, work_hours,
		non_billable_hours, overtime_hours, is_deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		nullableString(e.TeamID),
		e.TaskID,
		e.WorkDate.Format(dateLayout),
		e.WorkHours,
		e.NonBillableHours,
		e.OvertimeHours,
		boolToInt(e.IsDeleted),
	)
	if err != nil {
		return fmt.Errorf("inserting work log %s: %w", e.ID, err)
	}
	return nil
}

func (r *SQLiteWorkLogRepo) ListInRange(ctx context.Context, start, end time.Time) ([]domain.WorkLogEntry, error) {
	query := `SELECT id, user_id, team_id, task_id, work_date, work_hours,
		non_billable_hours, overtime_hours, is_deleted
		FROM work_logs
		WHERE is_deleted = 0 AND work_date BETWEEN ? AND ?
		ORDER BY work_date, id`
	rows, err := r.db.QueryContext(ctx, query, start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing work logs: %w", err)
	}
	defer rows.Close()

	entries := []domain.WorkLogEntry{}
	for rows.Next() {
		var e domain.WorkLogEntry
		var teamID sql.NullString
		var dateStr string
		var deleted int
		err := rows.Scan(&e.ID, &e.UserID, &teamID, &e.TaskID, &dateStr,
			&e.WorkHours, &e.NonBillableHours, &e.OvertimeHours, &deleted)
		if err != nil {
			return nil, fmt.Errorf("scanning work log row: %w", err)
		}
		if e.WorkDate, err = parseDate("work_date", dateStr); err != nil {
			return nil, err
		}
		if teamID.Valid {
			e.TeamID = &teamID.String
		}
		e.IsDeleted = intToBool(deleted)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work logs: %w", err)
	}
	return entries, nil
}

func (r *SQLiteWorkLogRepo) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE work_logs SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting work log: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("work log %s: %w", id, ErrNotFound)
	}
	return nil
}
