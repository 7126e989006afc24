package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/teamload/internal/db"
	"github.com/alexanderramin/teamload/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo over projects and project_tasks.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const (
	projectColumns = `id, name, status, plan_end_date, end_date`
	taskColumns    = `id, project_id, name, plan_start_date, plan_end_date, start_date, end_date,
		progress_code, is_progress_eligible, planning_total_hours, is_completed`
)

func (r *SQLiteProjectRepo) Upsert(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, status = excluded.status,
			plan_end_date = excluded.plan_end_date, end_date = excluded.end_date`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.StatusName),
		nullableDate(p.PlanEndDate),
		nullableDate(p.EndDate),
	)
	if err != nil {
		return fmt.Errorf("upserting project %s: %w", p.ID, err)
	}
	return nil
}

func (r *SQLiteProjectRepo) UpsertTask(ctx context.Context, t *domain.ProjectTask) error {
	query := `INSERT INTO project_tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET project_id = excluded.project_id, name = excluded.name,
			plan_start_date = excluded.plan_start_date, plan_end_date = excluded.plan_end_date,
			start_date = excluded.start_date, end_date = excluded.end_date,
			progress_code = excluded.progress_code, is_progress_eligible = excluded.is_progress_eligible,
			planning_total_hours = excluded.planning_total_hours, is_completed = excluded.is_completed`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ProjectID,
		t.Name,
		nullableDate(t.PlanStartDate),
		nullableDate(t.PlanEndDate),
		nullableDate(t.StartDate),
		nullableDate(t.EndDate),
		t.TaskProgressCode,
		boolToInt(t.IsProgressEligible),
		t.PlanningTotalHours,
		boolToInt(t.IsCompleted),
	)
	if err != nil {
		return fmt.Errorf("upserting task %s: %w", t.ID, err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	tasks, err := r.listTasks(ctx, `WHERE project_id = ?`, id)
	if err != nil {
		return nil, err
	}
	p.Tasks = tasks[id]
	if p.Tasks == nil {
		p.Tasks = []domain.ProjectTask{}
	}
	return &p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	// Close before the task query: an in-memory database has one connection.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	tasks, err := r.listTasks(ctx, ``)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Tasks = tasks[projects[i].ID]
		if projects[i].Tasks == nil {
			projects[i].Tasks = []domain.ProjectTask{}
		}
	}
	return projects, nil
}

// listTasks loads tasks grouped by project id.
func (r *SQLiteProjectRepo) listTasks(ctx context.Context, where string, args ...any) (map[string][]domain.ProjectTask, error) {
	query := `SELECT ` + taskColumns + ` FROM project_tasks ` + where + ` ORDER BY project_id, plan_start_date, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.ProjectTask)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		out[t.ProjectID] = append(out[t.ProjectID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return out, nil
}

func scanProject(s scanner) (domain.Project, error) {
	var p domain.Project
	var status string
	var planEnd, end sql.NullString
	if err := s.Scan(&p.ID, &p.Name, &status, &planEnd, &end); err != nil {
		return p, err
	}
	p.StatusName = domain.ProjectStatus(status)
	p.PlanEndDate = parseNullableDate(planEnd)
	p.EndDate = parseNullableDate(end)
	return p, nil
}

func scanTask(s scanner) (domain.ProjectTask, error) {
	var t domain.ProjectTask
	var planStart, planEnd, start, end sql.NullString
	var eligible, completed int
	err := s.Scan(
		&t.ID, &t.ProjectID, &t.Name,
		&planStart, &planEnd, &start, &end,
		&t.TaskProgressCode, &eligible, &t.PlanningTotalHours, &completed,
	)
	if err != nil {
		return t, err
	}
	t.PlanStartDate = parseNullableDate(planStart)
	t.PlanEndDate = parseNullableDate(planEnd)
	t.StartDate = parseNullableDate(start)
	t.EndDate = parseNullableDate(end)
	t.IsProgressEligible = intToBool(eligible)
	t.IsCompleted = intToBool(completed)
	return t, nil
}
