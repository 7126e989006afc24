package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/teamload/internal/db"
	"github.com/alexanderramin/teamload/internal/domain"
)

// SQLiteTeamRepo implements TeamRepo using a SQLite database.
type SQLiteTeamRepo struct {
	db db.DBTX
}

func NewSQLiteTeamRepo(conn db.DBTX) *SQLiteTeamRepo {
	return &SQLiteTeamRepo{db: conn}
}

func (r *SQLiteTeamRepo) Upsert(ctx context.Context, t *domain.Team) error {
	query := `INSERT INTO teams (id, name, is_work_tracked) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, is_work_tracked = excluded.is_work_tracked`
	if _, err := r.db.ExecContext(ctx, query, t.ID, t.Name, boolToInt(t.IsWorkTracked)); err != nil {
		return fmt.Errorf("upserting team %s: %w", t.ID, err)
	}
	return nil
}

func (r *SQLiteTeamRepo) List(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, is_work_tracked FROM teams ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		var t domain.Team
		var tracked int
		if err := rows.Scan(&t.ID, &t.Name, &tracked); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		t.IsWorkTracked = intToBool(tracked)
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teams: %w", err)
	}
	return teams, nil
}

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

const userColumns = `id, username, team_id, blocked`

func (r *SQLiteUserRepo) Upsert(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, username, team_id, blocked) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET username = excluded.username,
			team_id = excluded.team_id, blocked = excluded.blocked`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Username, nullableString(&u.TeamID), boolToInt(u.Blocked))
	if err != nil {
		return fmt.Errorf("upserting user %s: %w", u.ID, err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (r *SQLiteUserRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY username, id`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

func scanUser(s scanner) (domain.User, error) {
	var u domain.User
	var teamID sql.NullString
	var blocked int
	if err := s.Scan(&u.ID, &u.Username, &teamID, &blocked); err != nil {
		return u, err
	}
	u.TeamID = teamID.String
	u.Blocked = intToBool(blocked)
	return u, nil
}
