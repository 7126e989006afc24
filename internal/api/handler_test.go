package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/teamload/internal/repository"
	"github.com/alexanderramin/teamload/internal/service"
	"github.com/alexanderramin/teamload/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	database := testutil.NewTestDB(t)
	importer := service.NewImportService(testutil.NewTestUoW(database))
	_, err := importer.Import(context.Background(), "../importer/testdata/snapshot.json", false)
	require.NoError(t, err)

	projects := repository.NewSQLiteProjectRepo(database)
	loader := service.NewDatasetLoader(
		repository.NewSQLiteWorkLogRepo(database),
		repository.NewSQLiteMembershipRepo(database),
		repository.NewSQLiteUserRepo(database),
		repository.NewSQLiteTeamRepo(database),
		projects,
	)
	h := NewHandler(service.NewUtilizationService(loader), service.NewProjectReportService(projects))
	h.Now = func() time.Time { return time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC) }
	return NewRouter(h, nil)
}

func get(t *testing.T, r http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return w, body
}

func TestHealth(t *testing.T) {
	w, body := get(t, newTestRouter(t), "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestUtilization(t *testing.T) {
	w, body := get(t, newTestRouter(t), "/api/utilization?from=2025-03-10&to=2025-03-14")
	require.Equal(t, http.StatusOK, w.Code)

	summary := body["summary"].(map[string]any)
	assert.Equal(t, 50.0, summary["totalUtilization"])
	assert.Equal(t, 2.0, summary["totalUsers"])
	assert.Len(t, body["teams"], 2)
}

func TestUtilization_Week(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/utilization?week=2025-W11")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50.0, body["summary"].(map[string]any)["totalUtilization"])

	w, body = get(t, r, "/api/utilization?week=2025-W53")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATE", body["code"])

	w, body = get(t, r, "/api/hours?week=2025-W11&from=2025-03-10")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_RANGE", body["code"])
}

func TestUtilization_IncludeUntracked(t *testing.T) {
	r := newTestRouter(t)

	_, body := get(t, r, "/api/utilization?from=2025-03-10&to=2025-03-14&include_untracked=true")
	assert.Len(t, body["teams"], 3)

	w, body := get(t, r, "/api/utilization?from=2025-03-10&to=2025-03-14&include_untracked=maybe")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "include_untracked")
}

func TestUtilization_RequestErrors(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/utilization?from=2025-03-14&to=2025-03-10")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_RANGE", body["code"])

	w, body = get(t, r, "/api/utilization?from=March&to=2025-03-10")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATE", body["code"])
}

func TestWeekly(t *testing.T) {
	w, body := get(t, newTestRouter(t), "/api/utilization/weekly?from=2025-03-10&to=2025-03-21")
	require.Equal(t, http.StatusOK, w.Code)

	weeks := body["weeks"].([]any)
	require.Len(t, weeks, 2)
	first := weeks[0].(map[string]any)
	assert.Equal(t, "W11 (03/10~03/14)", first["label"])
	assert.Nil(t, first["changeFromPrevious"])
	assert.Equal(t, "down", weeks[1].(map[string]any)["trend"])
}

func TestRanking(t *testing.T) {
	w, body := get(t, newTestRouter(t), "/api/utilization/ranking?from=2025-03-10&to=2025-03-14")
	require.Equal(t, http.StatusOK, w.Code)

	ranking := body["ranking"].(map[string]any)
	top := ranking["top"].([]any)
	require.Len(t, top, 3)
	assert.Equal(t, 66.7, top[0].(map[string]any)["utilization"])
}

func TestHours(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/hours?from=2025-03-10&to=2025-03-14")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "project", body["groupBy"])
	rows := body["rows"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "new", rows[0].(map[string]any)["trend"])

	w, body = get(t, r, "/api/hours?from=2025-03-10&to=2025-03-14&group=team")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["rows"], 3)

	w, _ = get(t, r, "/api/hours?from=2025-03-10&to=2025-03-14&group=user")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjects_DefaultsTodayToNow(t *testing.T) {
	w, body := get(t, newTestRouter(t), "/api/projects")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "2025-03-12T00:00:00Z", body["today"])
	projects := body["projects"].([]any)
	require.Len(t, projects, 3)
	billing := projects[0].(map[string]any)
	assert.Equal(t, 25.0, billing["progress"])
	assert.Equal(t, "imminent", billing["scheduleStatus"])
}

func TestProjects_InvalidToday(t *testing.T) {
	w, body := get(t, newTestRouter(t), "/api/projects?today=12/03/2025")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATE", body["code"])
}

func TestTasks(t *testing.T) {
	r := newTestRouter(t)

	w, body := get(t, r, "/api/projects/p-billing/tasks?today=2025-03-12")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["tasks"], 3)

	w, body = get(t, r, "/api/projects/p-none/tasks")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "project p-none not found", body["error"])
}
