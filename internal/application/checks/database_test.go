package checks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/webdiag/internal/domain"
)

func TestDatabaseInspectsEachFile(t *testing.T) {
	report := newTestReport(t)
	writeFile(t, report.BasePath, "instance/portal.db", "")
	writeFile(t, report.BasePath, "backup/broken.db", "")
	writeFile(t, report.BasePath, "notes.txt", "")
	inspector := &fakeInspector{tables: map[string]map[string]int64{
		"portal.db": {"users": 3, "courses": 0},
	}}

	NewDatabase(inspector).Run(context.Background(), testConfig(), report)

	require.Len(t, report.DatabaseStatus, 2)
	portal := report.DatabaseStatus["instance/portal.db"]
	assert.True(t, portal.Accessible)
	assert.Equal(t, domain.DatabaseTypeSQLite, portal.Type)
	assert.Equal(t, map[string]int64{"users": 3, "courses": 0}, portal.Tables)

	broken := report.DatabaseStatus["backup/broken.db"]
	assert.False(t, broken.Accessible)
	assert.Equal(t, "file is not a database", broken.Error)

	assert.Equal(t, []string{"Successfully connected to portal.db"}, messages(report.Info))
	assert.Equal(t, []string{"Could not access database broken.db: file is not a database"}, messages(report.Issues))
}

func TestDatabaseNoFiles(t *testing.T) {
	report := newTestReport(t)

	NewDatabase(&fakeInspector{}).Run(context.Background(), testConfig(), report)

	assert.Empty(t, report.DatabaseStatus)
	assert.Empty(t, report.Findings())
}
