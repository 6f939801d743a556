package python

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/webdiag/internal/domain"
)

func TestParseIntrospectionIgnoresModuleOutput(t *testing.T) {
	out := "starting app\n * Serving Flask app\n\n" +
		`{"outcome": "loaded", "secret_key_configured": true, "database_uri": "sqlite:///x.db", "debug": false, "registered_routes": 4, "blueprints": ["auth"]}` + "\n"

	result, err := parseIntrospection(out)
	require.NoError(t, err)
	assert.Equal(t, domain.IntrospectionLoaded, result.Outcome)
	assert.True(t, result.SecretKeyConfigured)
	assert.Equal(t, 4, result.RegisteredRoutes)
	assert.Equal(t, []string{"auth"}, result.Blueprints)
}

func TestParseIntrospectionErrors(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"empty", "  \n"},
		{"not json", "Traceback (most recent call last)"},
		{"unknown outcome", `{"outcome": "maybe"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseIntrospection(tt.out)
			assert.Error(t, err)
		})
	}
}

func TestParseIntrospectionImportError(t *testing.T) {
	result, err := parseIntrospection(`{"outcome": "import_error", "error": "No module named 'flask'"}`)
	require.NoError(t, err)
	assert.Equal(t, domain.IntrospectionImportError, result.Outcome)
	assert.Equal(t, "No module named 'flask'", result.Error)
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "c", lastLine("a\nb\n c \n"))
	assert.Equal(t, "only", lastLine("only"))
}

func requirePython(t *testing.T) string {
	t.Helper()
	exe, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not available")
	}
	return exe
}

func TestIntrospectOutcomes(t *testing.T) {
	exe := requirePython(t)
	tests := []struct {
		name    string
		source  string
		outcome domain.IntrospectionOutcome
		errText string
	}{
		{"app bound to None", "app = None\n", domain.IntrospectionExecError, "config"},
		{"no app attribute", "application = object()\n", domain.IntrospectionNoApp, ""},
		{"missing import", "import webdiag_missing_module\n", domain.IntrospectionImportError, "webdiag_missing_module"},
		{"raises at import", "raise ValueError('boom')\n", domain.IntrospectionExecError, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "app.py"), []byte(tt.source), 0o644))

			result, err := NewIntrospector(exe, 10*time.Second).Introspect(context.Background(), dir, "app.py")
			require.NoError(t, err)
			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Contains(t, result.Error, tt.errText)
		})
	}
}
