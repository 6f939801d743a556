package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/webdiag/internal/domain"
)

func sampleReport(base string) *domain.Report {
	report := domain.NewReport(base)
	report.RecordError(domain.CategoryAppConfig, domain.MsgSecretKeyMissing)
	report.RecordWarning(domain.CategoryStatic, domain.MsgStaticDirNotFound)
	report.RecordInfo(domain.CategoryDatabase, "Successfully connected to app.db")
	size := int64(120)
	report.FileStructure["app.py"] = domain.FileRecord{Exists: true, Size: &size, Description: "Main application file", Type: "file"}
	report.FileStructure["static/"] = domain.FileRecord{Exists: false, Description: "Static files directory"}
	report.Configurations["flask_config"] = domain.Facts{"debug": false, "registered_routes": 4}
	report.DatabaseStatus["instance/app.db"] = domain.DatabaseStatus{
		Type:       domain.DatabaseTypeSQLite,
		Accessible: true,
		Tables:     map[string]int64{"users": 3},
	}
	report.Solutions = []domain.Solution{{
		Issue:    "Missing SECRET_KEY",
		Solution: "Add a SECRET_KEY to your Flask app configuration",
		Command:  "python -c 'import secrets; print(secrets.token_hex(16))'",
	}}
	return report
}

func TestConsoleRendererLayout(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	require.NoError(t, NewConsoleRenderer(&buf).Publish(context.Background(), sampleReport("/srv/app")))

	out := buf.String()
	for _, want := range []string{
		"WEB APPLICATION DIAGNOSTIC REPORT",
		"   - Total Issues: 1",
		"   - Warnings: 1",
		"   - Info Messages: 1",
		"CRITICAL ISSUES:",
		"[APP_CONFIG] " + domain.MsgSecretKeyMissing,
		"[STATIC] " + domain.MsgStaticDirNotFound,
		"[OK] app.py (120 bytes)",
		"   - registered_routes: 4",
		"      - users: 3 records",
		"1. Issue: Missing SECRET_KEY",
		"Command: python -c",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "static/", "missing entries are not listed")
	assert.NotContains(t, out, "partial")
}

func TestConsoleRendererMarksPartialRuns(t *testing.T) {
	color.NoColor = true
	report := domain.NewReport("/srv/app")
	report.Partial = true
	var buf bytes.Buffer
	require.NoError(t, NewConsoleRenderer(&buf).Publish(context.Background(), report))
	assert.Contains(t, buf.String(), "results are partial")
	assert.NotContains(t, buf.String(), "CRITICAL ISSUES:")
}

func TestJSONWriterWritesIntoBasePath(t *testing.T) {
	base := t.TempDir()
	var notice bytes.Buffer
	writer := NewBaseJSONWriter("diagnostic_report.json", &notice)

	require.NoError(t, writer.Publish(context.Background(), sampleReport(base)))

	target := filepath.Join(base, "diagnostic_report.json")
	data, err := os.ReadFile(target)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"timestamp", "base_path", "issues", "warnings", "info", "file_structure", "configurations", "database_status", "dependencies", "server_status", "solutions"} {
		assert.Contains(t, decoded, key)
	}
	assert.Len(t, decoded, 11)
	assert.Contains(t, notice.String(), target)

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".tmp."), "temp file left behind: %s", e.Name())
	}
}

func TestJSONFileWriterCreatesParents(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out", "copy.json")
	writer := NewJSONFileWriter(target, nil)

	require.NoError(t, writer.Publish(context.Background(), sampleReport("/srv/app")))
	assert.FileExists(t, target)
	assert.Equal(t, "output", writer.Name())
}

func TestJSONWriterReportsUnwritableTarget(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := NewJSONFileWriter(filepath.Join(blocker, "report.json"), nil).Publish(context.Background(), sampleReport(base))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not save report")
}

func TestBaseJSONWriterLeavesMissingProjectAlone(t *testing.T) {
	base := filepath.Join(t.TempDir(), "missing-project")

	err := NewBaseJSONWriter("diagnostic_report.json", nil).Publish(context.Background(), sampleReport(base))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not save report")
	assert.NoDirExists(t, base)
}

func TestConsoleProgressPrintsBannerAndSteps(t *testing.T) {
	var buf bytes.Buffer
	progress := NewConsoleProgress(&buf, false)

	progress.RunStarted("/srv/app")
	progress.StepStarted("dependencies")
	progress.StepFinished("dependencies")
	progress.StepStarted("custom")
	progress.StepFinished("custom")

	out := buf.String()
	assert.Contains(t, out, "Starting web application diagnostic...")
	assert.Contains(t, out, "Base Path: /srv/app")
	assert.Contains(t, out, "Analyzing requirements and dependencies...\n")
	assert.Contains(t, out, "Running custom...\n")
	assert.NotContains(t, out, "\r", "no animation without a terminal")
}

func TestSpinnerRestartsAndClears(t *testing.T) {
	var buf syncBuffer
	spinner := NewSpinner(&buf)
	spinner.interval = 5 * time.Millisecond

	for i := 0; i < 2; i++ {
		spinner.Start("Analyzing database...")
		time.Sleep(20 * time.Millisecond)
		spinner.Stop()
	}
	spinner.Stop()

	out := buf.String()
	assert.Contains(t, out, "Analyzing database...")
	assert.True(t, strings.HasSuffix(out, "\r\033[K"))
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
