package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pipListing = `Package    Version
---------- -------
Flask      2.0.0
Flask-Login 0.6.3
Jinja2     3.1.2
requests   2.31.0
`

func TestRequirementName(t *testing.T) {
	tests := map[string]string{
		"flask==2.0.0":         "flask",
		"requests>=2.0":        "requests",
		"gunicorn<=21":         "gunicorn",
		"  sqlalchemy  ":       "sqlalchemy",
		"werkzeug>=2.0,<=3.0":  "werkzeug",
		"pkg~=1.0":             "pkg~=1.0",
		"flask-wtf == 1.2.1 ":  "flask-wtf",
	}
	for line, want := range tests {
		assert.Equal(t, want, RequirementName(line), line)
	}
}

func TestMissingPackages(t *testing.T) {
	reqs := []string{"flask==2.0.0", "", "# dev tools", "nonexistentpkg123", "REQUESTS>=2"}

	missing := MissingPackages(reqs, pipListing)

	assert.Equal(t, []string{"nonexistentpkg123"}, missing)
}

func TestMissingPackagesSubstringMatch(t *testing.T) {
	// "login" only appears inside Flask-Login and still counts as present.
	assert.Empty(t, MissingPackages([]string{"login"}, pipListing))
}

func TestDependenciesManifestMissing(t *testing.T) {
	report := newTestReport(t)

	NewDependencies(&fakeLister{listing: pipListing}).Run(context.Background(), testConfig(), report)

	assert.Equal(t, []string{"requirements.txt not found"}, messages(report.Warnings))
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Info)
	assert.Empty(t, report.Dependencies)
}

func TestDependenciesReportsMissing(t *testing.T) {
	report := newTestReport(t)
	writeFile(t, report.BasePath, "requirements.txt", "flask==2.0.0\r\nnonexistentpkg123\nalsomissing>=1\n")

	NewDependencies(&fakeLister{listing: pipListing}).Run(context.Background(), testConfig(), report)

	assert.Equal(t, []string{"Missing packages: nonexistentpkg123, alsomissing"}, messages(report.Issues))
	assert.Equal(t, []string{"nonexistentpkg123", "alsomissing"}, report.Dependencies["missing_packages"])
	assert.Equal(t, []string{"flask==2.0.0", "nonexistentpkg123", "alsomissing>=1"}, report.Dependencies["requirements_file"])
}

func TestDependenciesAllInstalled(t *testing.T) {
	report := newTestReport(t)
	writeFile(t, report.BasePath, "requirements.txt", "flask==2.0.0\njinja2\n")

	NewDependencies(&fakeLister{listing: pipListing}).Run(context.Background(), testConfig(), report)

	assert.Equal(t, []string{"All required packages appear to be installed"}, messages(report.Info))
	assert.Empty(t, report.Issues)
	assert.Equal(t, []string{}, report.Dependencies["missing_packages"])
}

func TestDependenciesPackageQueryFails(t *testing.T) {
	report := newTestReport(t)
	writeFile(t, report.BasePath, "requirements.txt", "flask\n")

	NewDependencies(&fakeLister{err: errors.New("No module named pip")}).Run(context.Background(), testConfig(), report)

	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "Could not check installed packages: No module named pip", report.Warnings[0].Message)
	assert.Empty(t, report.Issues)
	assert.NotContains(t, report.Dependencies, "missing_packages")
}
