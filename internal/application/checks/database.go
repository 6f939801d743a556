package checks

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// Database opens every database file under the base path and counts rows
// per table. Each file is inspected on its own connection.
type Database struct {
	Inspector ports.DatabaseInspector
}

// NewDatabase creates the database check.
func NewDatabase(inspector ports.DatabaseInspector) *Database {
	return &Database{Inspector: inspector}
}

func (c *Database) Name() string {
	return string(domain.CategoryDatabase)
}

func (c *Database) Run(ctx context.Context, _ domain.Config, report *domain.Report) {
	for _, path := range collectFiles(report.BasePath, hasExt(domain.DatabaseFileExt)) {
		key := relPath(report.BasePath, path)
		name := filepath.Base(path)

		tables, err := c.tableCounts(ctx, path)
		if err != nil {
			report.DatabaseStatus[key] = domain.DatabaseStatus{
				Type:       domain.DatabaseTypeSQLite,
				Accessible: false,
				Error:      err.Error(),
			}
			report.RecordError(domain.CategoryDatabase, domain.MsgDatabaseInaccessible(name, err))
			continue
		}
		report.DatabaseStatus[key] = domain.DatabaseStatus{
			Type:       domain.DatabaseTypeSQLite,
			Accessible: true,
			Tables:     tables,
		}
		report.RecordInfo(domain.CategoryDatabase, domain.MsgDatabaseConnected(name))
	}
}

func (c *Database) tableCounts(ctx context.Context, path string) (map[string]int64, error) {
	if c.Inspector == nil {
		return nil, errors.New("no database driver configured")
	}
	return c.Inspector.TableCounts(ctx, path)
}

var _ ports.Check = (*Database)(nil)
