package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/teamload/internal/repository"
	"github.com/alexanderramin/teamload/internal/testutil"
	"github.com/stretchr/testify/require"
)

const snapshotPath = "../importer/testdata/snapshot.json"

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type testServices struct {
	db       *sql.DB
	loader   *DatasetLoader
	util     UtilizationService
	projects ProjectReportService
	importer ImportService
	observer *recordingObserver
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	loader := NewDatasetLoader(
		repository.NewSQLiteWorkLogRepo(database),
		repository.NewSQLiteMembershipRepo(database),
		repository.NewSQLiteUserRepo(database),
		repository.NewSQLiteTeamRepo(database),
		repository.NewSQLiteProjectRepo(database),
	)
	return &testServices{
		db:       database,
		loader:   loader,
		util:     NewUtilizationService(loader, obs),
		projects: NewProjectReportService(repository.NewSQLiteProjectRepo(database), obs),
		importer: NewImportService(testutil.NewTestUoW(database), obs),
		observer: obs,
	}
}

// newSeededServices imports the shared snapshot fixture.
func newSeededServices(t *testing.T) *testServices {
	t.Helper()
	svc := newTestServices(t)
	_, err := svc.importer.Import(context.Background(), snapshotPath, false)
	require.NoError(t, err)
	return svc
}

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
