package python

import (
	"context"
	"time"

	"github.com/doeshing/webdiag/internal/ports"
)

// PipLister queries installed packages with `<python> -m pip list`.
type PipLister struct {
	executable string
	timeout    time.Duration
}

// NewPipLister builds a lister for the given interpreter.
func NewPipLister(executable string, timeout time.Duration) *PipLister {
	return &PipLister{executable: executable, timeout: timeout}
}

// ListInstalled implements ports.PackageLister. The raw listing is returned
// unparsed; callers match against it textually.
func (p *PipLister) ListInstalled(ctx context.Context, dir string) (string, error) {
	return runCmd(ctx, p.timeout, dir, p.executable, "-m", "pip", "list")
}

var _ ports.PackageLister = (*PipLister)(nil)
