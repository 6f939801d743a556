package diagnose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/webdiag/internal/domain"
)

func errorFinding(category domain.Category, msg string) domain.Finding {
	return domain.Finding{Category: category, Message: msg, Severity: domain.SeverityError}
}

func TestDeriveSolutionsMissingPackages(t *testing.T) {
	for _, msg := range []string{"Missing packages: foo, bar", "Missing packages: somethingelse"} {
		solutions := DeriveSolutions([]domain.Finding{errorFinding(domain.CategoryDependencies, msg)}, testLayout())

		require.Len(t, solutions, 1)
		assert.Equal(t, msg, solutions[0].Issue)
		assert.Equal(t, "pip install -r requirements.txt", solutions[0].Command)
		assert.Empty(t, solutions[0].CodeExample)
	}
}

func TestDeriveSolutionsRuleTable(t *testing.T) {
	tests := []struct {
		message  string
		solution string
		code     bool
		command  string
	}{
		{"app.py not found - this is critical!", "Create app.py file with basic Flask application structure", true, ""},
		{"No SECRET_KEY found - sessions won't work properly", "Add SECRET_KEY to your Flask configuration", true, ""},
		{"Templates directory not found", "Create templates directory and basic templates", false, "mkdir templates && touch templates/base.html templates/index.html"},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			solutions := DeriveSolutions([]domain.Finding{errorFinding(domain.CategoryAppConfig, tt.message)}, testLayout())

			require.Len(t, solutions, 1)
			assert.Equal(t, tt.solution, solutions[0].Solution)
			assert.Equal(t, tt.code, solutions[0].CodeExample != "")
			assert.Equal(t, tt.command, solutions[0].Command)
		})
	}
}

func TestDeriveSolutionsIgnoresUnmatchedAndNonErrors(t *testing.T) {
	issues := []domain.Finding{
		errorFinding(domain.CategoryAppConfig, "Flask imports not found in app.py"),
		errorFinding(domain.CategoryServer, "WSGI file doesn't properly import the app"),
		{Category: domain.CategoryDependencies, Message: "Missing packages: x", Severity: domain.SeverityWarning},
	}

	assert.Empty(t, DeriveSolutions(issues, testLayout()))
}

func TestDeriveSolutionsKeepsOrder(t *testing.T) {
	issues := []domain.Finding{
		errorFinding(domain.CategoryDependencies, "Missing packages: a"),
		errorFinding(domain.CategoryAppConfig, "No SECRET_KEY found - sessions won't work properly"),
		errorFinding(domain.CategoryDependencies, "Missing packages: a"),
	}

	solutions := DeriveSolutions(issues, testLayout())

	require.Len(t, solutions, 3)
	assert.Equal(t, "Install missing packages using pip", solutions[0].Solution)
	assert.Equal(t, "Add SECRET_KEY to your Flask configuration", solutions[1].Solution)
	assert.Equal(t, "Install missing packages using pip", solutions[2].Solution)
}

func testLayout() domain.LayoutSettings {
	return domain.LayoutSettings{
		EntryFile:       "app.py",
		ManifestFile:    "requirements.txt",
		ServerEntryFile: "wsgi.py",
		TemplatesDir:    "templates",
		StaticDir:       "static",
		InstanceDir:     "instance",
	}
}
