package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/teamload/internal/db"
	"github.com/alexanderramin/teamload/internal/domain"
)

// SQLiteMembershipRepo implements MembershipRepo over the team_histories table.
type SQLiteMembershipRepo struct {
	db db.DBTX
}

func NewSQLiteMembershipRepo(conn db.DBTX) *SQLiteMembershipRepo {
	return &SQLiteMembershipRepo{db: conn}
}

const membershipColumns = `id, user_id, team_id, start_date, end_date`

func (r *SQLiteMembershipRepo) Create(ctx context.Context, rec *domain.TeamMembershipRecord) error {
	query := `INSERT INTO team_histories (` + membershipColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.TeamID,
		rec.StartDate.Format(dateLayout),
		nullableDate(rec.EndDate),
	)
	if err != nil {
		return fmt.Errorf("inserting team history %s: %w", rec.ID, err)
	}
	return nil
}

// List returns every team-history record, ordered by user and start date.
func (r *SQLiteMembershipRepo) List(ctx context.Context) ([]domain.TeamMembershipRecord, error) {
	query := `SELECT ` + membershipColumns + ` FROM team_histories
		ORDER BY user_id, start_date, id`
	return r.list(ctx, query)
}

func (r *SQLiteMembershipRepo) list(ctx context.Context, query string, args ...any) ([]domain.TeamMembershipRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing team histories: %w", err)
	}
	defer rows.Close()

	records := []domain.TeamMembershipRecord{}
	for rows.Next() {
		rec, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team histories: %w", err)
	}
	return records, nil
}

func scanMembership(s scanner) (domain.TeamMembershipRecord, error) {
	var rec domain.TeamMembershipRecord
	var startStr string
	var endStr sql.NullString
	if err := s.Scan(&rec.ID, &rec.UserID, &rec.TeamID, &startStr, &endStr); err != nil {
		return rec, fmt.Errorf("scanning team history row: %w", err)
	}
	start, err := parseDate("start_date", startStr)
	if err != nil {
		return rec, err
	}
	rec.StartDate = start
	rec.EndDate = parseNullableDate(endStr)
	return rec, nil
}
