// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the diagnostic core and the
// adapters that touch the outside world: the Python toolchain of the
// inspected project, SQLite files, report sinks and the run history store.
// Checks depend on these abstractions so they can be exercised with fakes.
package ports

import (
	"context"

	"github.com/doeshing/webdiag/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.webdiag/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Check inspects one aspect of the target project and writes findings and
// facts into the shared report. Checks never return errors: inspection
// failures are recorded as findings.
type Check interface {
	Name() string
	Run(ctx context.Context, cfg domain.Config, report *domain.Report)
}

// PackageLister returns the raw installed-package listing of the project's
// package manager (the output of `pip list`).
type PackageLister interface {
	ListInstalled(ctx context.Context, dir string) (string, error)
}

// AppIntrospector loads the entry module in an isolated interpreter and
// reports what its application object exposes. A non-nil error means the
// attempt itself could not be made; load outcomes travel in the result.
type AppIntrospector interface {
	Introspect(ctx context.Context, baseDir, entryFile string) (domain.AppIntrospection, error)
}

// DatabaseInspector opens a database file and counts rows per user table.
type DatabaseInspector interface {
	TableCounts(ctx context.Context, path string) (map[string]int64, error)
}

// ReportSink consumes a finished report (console, JSON file, history).
type ReportSink interface {
	Name() string
	Publish(ctx context.Context, report *domain.Report) error
}

// ProgressReporter follows a run as it happens, before the report exists.
// Steps are check names plus the final "solutions" step.
type ProgressReporter interface {
	RunStarted(basePath string)
	StepStarted(step string)
	StepFinished(step string)
}

// RunHistoryRepository persists run summaries.
type RunHistoryRepository interface {
	Save(record domain.RunRecord) error
	Records(limit int) ([]domain.RunRecord, error)
	Clear() error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations route to the operator-facing channel, never into reports.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
