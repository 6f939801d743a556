package checks

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// Jinja delimiters; a template file with neither is probably plain HTML.
const (
	expressionDelimiter = "{{"
	statementDelimiter  = "{%"
)

// Templates inventories HTML templates and flags files without template syntax.
type Templates struct{}

// NewTemplates creates the template check.
func NewTemplates() *Templates {
	return &Templates{}
}

func (c *Templates) Name() string {
	return string(domain.CategoryTemplates)
}

func (c *Templates) Run(_ context.Context, cfg domain.Config, report *domain.Report) {
	dir := filepath.Join(report.BasePath, cfg.Layout.TemplatesDir)
	if _, err := os.Stat(dir); err != nil {
		report.RecordError(domain.CategoryTemplates, domain.MsgTemplatesDirNotFound)
		return
	}

	files := collectFiles(dir, hasExt(domain.TemplateFileExt))
	report.Configurations["templates"] = domain.Facts{
		"directory_exists": true,
		"template_count":   len(files),
		"template_files":   relPaths(report.BasePath, files),
	}

	if len(files) == 0 {
		report.RecordWarning(domain.CategoryTemplates, domain.MsgNoTemplates)
	} else {
		report.RecordInfo(domain.CategoryTemplates, domain.MsgTemplatesFound(len(files)))
	}

	for _, path := range files {
		name := filepath.Base(path)
		data, err := os.ReadFile(path)
		if err != nil {
			report.RecordWarning(domain.CategoryTemplates, domain.MsgTemplateReadError(name, err))
			continue
		}
		content := string(data)
		if !strings.Contains(content, expressionDelimiter) && !strings.Contains(content, statementDelimiter) {
			report.RecordWarning(domain.CategoryTemplates, domain.MsgNotATemplate(name))
		}
	}
}

var _ ports.Check = (*Templates)(nil)
