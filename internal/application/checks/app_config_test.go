package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/webdiag/internal/domain"
)

const healthyApp = `from flask import Flask, Blueprint
import os

app = Flask(__name__)
app.config['SECRET_KEY'] = os.environ.get('SECRET_KEY')
app.config['SQLALCHEMY_DATABASE_URI'] = 'sqlite:///portal.db'

@app.route('/')
def home():
    return 'ok'

@app.route('/courses')
def courses():
    return 'courses'

@app.errorhandler(404)
def missing(e):
    return 'missing', 404

if __name__ == '__main__':
    app.run(debug=True, port=5000)
`

func TestAnalyzeEntrySource(t *testing.T) {
	facts := AnalyzeEntrySource(healthyApp)

	assert.Equal(t, EntrySourceFacts{
		FlaskImports:   true,
		DatabaseConfig: true,
		SecretKey:      true,
		DebugMode:      true,
		PortConfig:     true,
		RoutesCount:    2,
		BlueprintUsage: true,
		ErrorHandling:  true,
	}, facts)
}

func TestAnalyzeEntrySourceEmpty(t *testing.T) {
	assert.Equal(t, EntrySourceFacts{}, AnalyzeEntrySource(""))
}

func TestAppConfigMissingEntryFile(t *testing.T) {
	report := newTestReport(t)
	introspector := &fakeIntrospector{}

	NewAppConfig(introspector).Run(context.Background(), testConfig(), report)

	require.Len(t, report.Issues, 1)
	assert.Equal(t, "app.py not found - this is critical!", report.Issues[0].Message)
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.Info)
	assert.NotContains(t, report.Configurations, "app_py")
	assert.Zero(t, introspector.calls)
}

func TestAppConfigPolicies(t *testing.T) {
	report := newTestReport(t)
	writeFile(t, report.BasePath, "app.py", "import os\nprint('no framework here')\n")
	introspector := &fakeIntrospector{result: domain.AppIntrospection{Outcome: domain.IntrospectionNoApp}}

	NewAppConfig(introspector).Run(context.Background(), testConfig(), report)

	assert.Equal(t, []string{
		"Flask imports not found in app.py",
		"No SECRET_KEY found - sessions won't work properly",
		"No 'app' instance found in app.py",
	}, messages(report.Issues))
	assert.Equal(t, []string{"No routes found in app.py"}, messages(report.Warnings))
	assert.Equal(t, 0, report.Configurations["app_py"]["routes_count"])
}

func TestAppConfigIntrospectionOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		result   domain.AppIntrospection
		err      error
		panics   bool
		severity domain.Severity
		message  string
	}{
		{
			name:     "loaded",
			result:   domain.AppIntrospection{Outcome: domain.IntrospectionLoaded, SecretKeyConfigured: true, RegisteredRoutes: 3},
			severity: domain.SeverityInfo,
			message:  "Successfully imported Flask app",
		},
		{
			name:     "import error",
			result:   domain.AppIntrospection{Outcome: domain.IntrospectionImportError, Error: "No module named 'flask_login'"},
			severity: domain.SeverityError,
			message:  "Import error in app.py: No module named 'flask_login'",
		},
		{
			name:     "exec error",
			result:   domain.AppIntrospection{Outcome: domain.IntrospectionExecError, Error: "division by zero"},
			severity: domain.SeverityError,
			message:  "Error executing app.py: division by zero",
		},
		{
			name:     "interpreter missing",
			err:      errors.New(`exec: "python3": executable file not found in $PATH`),
			severity: domain.SeverityWarning,
			message:  `Could not analyze app imports: exec: "python3": executable file not found in $PATH`,
		},
		{
			name:     "panic",
			panics:   true,
			severity: domain.SeverityWarning,
			message:  "Could not analyze app imports: interpreter exploded",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := newTestReport(t)
			writeFile(t, report.BasePath, "app.py", healthyApp)
			introspector := &fakeIntrospector{result: tt.result, err: tt.err, panics: tt.panics}

			NewAppConfig(introspector).Run(context.Background(), testConfig(), report)

			// healthyApp itself only triggers the debug warning
			var got []domain.Finding
			for _, f := range report.Findings() {
				if f.Message != domain.MsgDebugEnabled {
					got = append(got, f)
				}
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.severity, got[0].Severity)
			assert.Equal(t, tt.message, got[0].Message)
		})
	}
}

func TestAppConfigRecordsFlaskConfig(t *testing.T) {
	report := newTestReport(t)
	writeFile(t, report.BasePath, "app.py", healthyApp)
	introspector := &fakeIntrospector{result: domain.AppIntrospection{
		Outcome:             domain.IntrospectionLoaded,
		SecretKeyConfigured: true,
		RegisteredRoutes:    3,
		Blueprints:          []string{"admin"},
	}}

	NewAppConfig(introspector).Run(context.Background(), testConfig(), report)

	flask := report.Configurations["flask_config"]
	require.NotNil(t, flask)
	assert.Equal(t, true, flask["secret_key_configured"])
	assert.Equal(t, "Not configured", flask["database_uri"])
	assert.Equal(t, 3, flask["registered_routes"])
	assert.Equal(t, []string{"admin"}, flask["blueprints"])
}
