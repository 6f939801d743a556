package checks

import (
	"context"
	"os"
	"path/filepath"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

var imageExts = []string{".png", ".jpg", ".jpeg", ".gif"}

// Static counts stylesheets, scripts and images under the static directory.
type Static struct{}

// NewStatic creates the static-assets check.
func NewStatic() *Static {
	return &Static{}
}

func (c *Static) Name() string {
	return string(domain.CategoryStatic)
}

func (c *Static) Run(_ context.Context, cfg domain.Config, report *domain.Report) {
	dir := filepath.Join(report.BasePath, cfg.Layout.StaticDir)
	if _, err := os.Stat(dir); err != nil {
		report.RecordWarning(domain.CategoryStatic, domain.MsgStaticDirNotFound)
		return
	}

	css := relPaths(report.BasePath, collectFiles(dir, hasExt(".css")))
	js := relPaths(report.BasePath, collectFiles(dir, hasExt(".js")))
	images := relPaths(report.BasePath, collectFiles(dir, hasExt(imageExts...)))

	report.Configurations["static_files"] = domain.Facts{
		"directory_exists": true,
		"css_count":        len(css),
		"js_count":         len(js),
		"image_count":      len(images),
		"css_files":        css,
		"js_files":         js,
		"image_files":      images,
	}
	report.RecordInfo(domain.CategoryStatic, domain.MsgStaticSummary(len(css), len(js), len(images)))
}

var _ ports.Check = (*Static)(nil)
