package utilization

import (
	"testing"

	"github.com/alexanderramin/teamload/internal/calendar"
	"github.com/alexanderramin/teamload/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareEntity(t *testing.T) {
	cases := []struct {
		name              string
		current, previous float64
		rate              float64
		trend             domain.Trend
	}{
		{"new", 12, 0, 100, domain.TrendNew},
		{"both zero", 0, 0, 0, domain.TrendStable},
		{"ended", 0, 20, -100, domain.TrendEnd},
		{"up", 30, 20, 50, domain.TrendUp},
		{"down", 10, 20, -50, domain.TrendDown},
		{"small rise", 21, 20, 5, domain.TrendStable},
		{"exactly ten", 22, 20, 10, domain.TrendStable},
		{"one decimal", 10, 3, 233.3, domain.TrendUp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rate, trend := CompareEntity(tc.current, tc.previous)
			assert.Equal(t, tc.rate, rate)
			assert.Equal(t, tc.trend, trend)
		})
	}
}

func TestProjectHours(t *testing.T) {
	deleted := domain.WorkLogEntry{TaskID: "t1", WorkHours: 100, IsDeleted: true}
	entries := []domain.WorkLogEntry{
		{TaskID: "t1", WorkDate: calendar.Date(2025, 3, 3), WorkHours: 4, OvertimeHours: 1},
		{TaskID: "t2", WorkDate: calendar.Date(2025, 3, 4), WorkHours: 3},
		{TaskID: "t3", WorkDate: calendar.Date(2025, 3, 4), WorkHours: 2},
		{TaskID: "unknown", WorkHours: 9},
		deleted,
	}
	got := ProjectHours(entries, map[string]string{"t1": "p1", "t2": "p1", "t3": "p2"})
	assert.Equal(t, map[string]float64{"p1": 8, "p2": 2}, got)
}

func TestCompareHours(t *testing.T) {
	current := map[string]float64{"p1": 40, "p2": 10}
	previous := map[string]float64{"p1": 20, "p3": 15}
	names := map[string]string{"p1": "Portal", "p2": "Mobile"}

	got := CompareHours(current, previous, names)
	require.Len(t, got, 3)

	assert.Equal(t, "p1", got[0].EntityID)
	assert.Equal(t, "Portal", got[0].Name)
	assert.Equal(t, 100.0, got[0].ChangeRate)
	assert.Equal(t, domain.TrendUp, got[0].Trend)

	assert.Equal(t, "p2", got[1].EntityID)
	assert.Equal(t, domain.TrendNew, got[1].Trend)

	assert.Equal(t, "p3", got[2].EntityID)
	assert.Equal(t, "p3", got[2].Name, "falls back to id when unnamed")
	assert.Equal(t, domain.TrendEnd, got[2].Trend)
}

func TestCompareHours_Empty(t *testing.T) {
	got := CompareHours(nil, nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTeamHours(t *testing.T) {
	dev := "dev"
	users := []domain.User{
		{ID: "u1", Username: "kim", TeamID: "qa"},
		{ID: "u2", Username: "lee"},
	}
	entries := []domain.WorkLogEntry{
		{UserID: "u1", TeamID: &dev, WorkHours: 6},
		{UserID: "u1", WorkHours: 3},
		{UserID: "u1", WorkHours: 8, IsDeleted: true},
		{UserID: "u2", WorkHours: 4},
	}

	assert.Equal(t, map[string]float64{"dev": 6, "qa": 3}, TeamHours(entries, users))
}
