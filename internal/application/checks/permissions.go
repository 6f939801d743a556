package checks

import (
	"context"
	"os"
	"path/filepath"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

type importantPath struct {
	path     string
	writable bool
}

// Permissions inspects owner permission bits on the paths the application
// needs. Missing paths are skipped; the file-structure check reports them.
type Permissions struct{}

// NewPermissions creates the permission check.
func NewPermissions() *Permissions {
	return &Permissions{}
}

func (c *Permissions) Name() string {
	return string(domain.CategoryPermissions)
}

func (c *Permissions) Run(_ context.Context, cfg domain.Config, report *domain.Report) {
	paths := []importantPath{
		{path: cfg.Layout.EntryFile},
		{path: cfg.Layout.StaticDir, writable: true},
		{path: cfg.Layout.TemplatesDir},
		{path: cfg.Layout.InstanceDir, writable: true},
	}
	for _, p := range paths {
		full := filepath.Join(report.BasePath, p.path)
		info, err := os.Stat(full)
		if err != nil {
			continue
		}
		mode := info.Mode().Perm()
		if mode&domain.OwnerRead == 0 {
			report.RecordError(domain.CategoryPermissions, domain.MsgNotReadable(full))
		}
		if p.writable && mode&domain.OwnerWrite == 0 {
			report.RecordWarning(domain.CategoryPermissions, domain.MsgNotWritable(full))
		}
	}
}

var _ ports.Check = (*Permissions)(nil)
