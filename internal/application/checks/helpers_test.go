package checks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/doeshing/webdiag/internal/domain"
)

func testConfig() domain.Config {
	return domain.Config{
		Layout: domain.LayoutSettings{
			EntryFile:       "app.py",
			ManifestFile:    "requirements.txt",
			ServerEntryFile: "wsgi.py",
			TemplatesDir:    "templates",
			StaticDir:       "static",
			InstanceDir:     "instance",
		},
		Probes: domain.ProbeSettings{
			CPUInfoPath:  filepath.Join(os.TempDir(), "webdiag-no-such-cpuinfo"),
			VendorMarker: "Raspberry Pi",
		},
	}
}

func newTestReport(t *testing.T) *domain.Report {
	t.Helper()
	return domain.NewReport(t.TempDir())
}

func writeFile(t *testing.T, base, rel, content string) string {
	t.Helper()
	path := filepath.Join(base, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func messages(findings []domain.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}

type fakeIntrospector struct {
	result domain.AppIntrospection
	err    error
	panics bool
	calls  int
}

func (f *fakeIntrospector) Introspect(context.Context, string, string) (domain.AppIntrospection, error) {
	f.calls++
	if f.panics {
		panic("interpreter exploded")
	}
	return f.result, f.err
}

type fakeLister struct {
	listing string
	err     error
}

func (f *fakeLister) ListInstalled(context.Context, string) (string, error) {
	return f.listing, f.err
}

type fakeInspector struct {
	tables map[string]map[string]int64
}

func (f *fakeInspector) TableCounts(_ context.Context, path string) (map[string]int64, error) {
	if tables, ok := f.tables[filepath.Base(path)]; ok {
		return tables, nil
	}
	return nil, errors.New("file is not a database")
}
