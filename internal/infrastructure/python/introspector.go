package python

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/doeshing/webdiag/assets"
	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// Introspector loads the entry module in a child interpreter. The base path
// is prepended to the child's module search path only, so the host process
// is never touched and nothing needs restoring.
type Introspector struct {
	executable string
	timeout    time.Duration
}

// NewIntrospector builds an introspector for the given interpreter.
func NewIntrospector(executable string, timeout time.Duration) *Introspector {
	return &Introspector{executable: executable, timeout: timeout}
}

// Introspect implements ports.AppIntrospector.
func (i *Introspector) Introspect(ctx context.Context, baseDir, entryFile string) (domain.AppIntrospection, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return domain.AppIntrospection{}, err
	}
	entry := filepath.Join(absBase, entryFile)
	out, err := runCmd(ctx, i.timeout, absBase, i.executable, "-c", string(assets.IntrospectScript), absBase, entry)
	if err != nil {
		return domain.AppIntrospection{}, fmt.Errorf("run %s: %w", i.executable, err)
	}
	return parseIntrospection(out)
}

// parseIntrospection reads the last non-empty stdout line; anything the
// module printed while loading comes before it.
func parseIntrospection(out string) (domain.AppIntrospection, error) {
	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return domain.AppIntrospection{}, fmt.Errorf("introspection produced no output")
	}
	var result domain.AppIntrospection
	if err := json.Unmarshal([]byte(lastLine(trimmed)), &result); err != nil {
		return domain.AppIntrospection{}, fmt.Errorf("decode introspection output: %w", err)
	}
	switch result.Outcome {
	case domain.IntrospectionLoaded, domain.IntrospectionNoApp,
		domain.IntrospectionImportError, domain.IntrospectionExecError:
		return result, nil
	default:
		return domain.AppIntrospection{}, fmt.Errorf("unknown introspection outcome %q", result.Outcome)
	}
}

var _ ports.AppIntrospector = (*Introspector)(nil)
