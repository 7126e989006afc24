package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/alexanderramin/teamload/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUserAndTeams(t *testing.T, db *sql.DB) (*domain.User, *domain.Team, *domain.Team) {
	t.Helper()
	ctx := context.Background()
	dev := testutil.NewTestTeam("Dev")
	qa := testutil.NewTestTeam("QA")
	teams := NewSQLiteTeamRepo(db)
	require.NoError(t, teams.Upsert(ctx, dev))
	require.NoError(t, teams.Upsert(ctx, qa))

	user := testutil.NewTestUser("kim", qa.ID)
	require.NoError(t, NewSQLiteUserRepo(db).Upsert(ctx, user))
	return user, dev, qa
}

func TestMembershipRepo_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	user, dev, qa := seedUserAndTeams(t, db)
	repo := NewSQLiteMembershipRepo(db)

	current := testutil.NewTestMembership(user.ID, qa.ID, testutil.Date(2025, time.March, 13))
	devSpell := testutil.NewTestMembership(user.ID, dev.ID, testutil.Date(2025, time.January, 1),
		testutil.EndingOn(testutil.Date(2025, time.March, 12)))
	old := testutil.NewTestMembership(user.ID, dev.ID, testutil.Date(2024, time.January, 1),
		testutil.EndingOn(testutil.Date(2024, time.December, 31)))
	for _, rec := range []*domain.TeamMembershipRecord{current, devSpell, old} {
		require.NoError(t, repo.Create(ctx, rec))
	}

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, old.ID, records[0].ID)
	assert.Equal(t, devSpell.ID, records[1].ID)
	require.NotNil(t, records[1].EndDate)
	assert.Equal(t, testutil.Date(2025, time.March, 12), *records[1].EndDate)
	assert.Equal(t, current.ID, records[2].ID)
	assert.Nil(t, records[2].EndDate)
}

func TestMembershipRepo_ListEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)

	records, err := NewSQLiteMembershipRepo(db).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
