package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesMissingDirectory(t *testing.T) {
	report := newTestReport(t)

	NewTemplates().Run(context.Background(), testConfig(), report)

	assert.Equal(t, []string{"Templates directory not found"}, messages(report.Issues))
	assert.NotContains(t, report.Configurations, "templates")
}

func TestTemplatesDelimiterHeuristic(t *testing.T) {
	report := newTestReport(t)
	writeFile(t, report.BasePath, "templates/index.html", "<h1>{{ name }}</h1>")
	writeFile(t, report.BasePath, "templates/static.html", "<h1>plain</h1>")

	NewTemplates().Run(context.Background(), testConfig(), report)

	assert.Equal(t, []string{"static.html might not be a Flask template"}, messages(report.Warnings))
	assert.Equal(t, []string{"Found 2 template files"}, messages(report.Info))
	facts := report.Configurations["templates"]
	assert.Equal(t, 2, facts["template_count"])
	assert.Equal(t, []string{"templates/index.html", "templates/static.html"}, facts["template_files"])
}

func TestTemplatesStatementDelimiterCounts(t *testing.T) {
	report := newTestReport(t)
	writeFile(t, report.BasePath, "templates/layouts/base.html", "{% block content %}{% endblock %}")

	NewTemplates().Run(context.Background(), testConfig(), report)

	assert.Empty(t, report.Warnings)
}

func TestTemplatesEmptyDirectory(t *testing.T) {
	report := newTestReport(t)
	require.NoError(t, os.MkdirAll(filepath.Join(report.BasePath, "templates"), 0o755))
	writeFile(t, report.BasePath, "templates/readme.txt", "not a template")

	NewTemplates().Run(context.Background(), testConfig(), report)

	assert.Equal(t, []string{"No HTML template files found"}, messages(report.Warnings))
	assert.Empty(t, report.Info)
	assert.Equal(t, 0, report.Configurations["templates"]["template_count"])
}
