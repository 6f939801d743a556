package checks

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// FileStructure verifies the expected layout and records every file under
// the base path.
type FileStructure struct{}

// NewFileStructure creates the file-structure check.
func NewFileStructure() *FileStructure {
	return &FileStructure{}
}

func (c *FileStructure) Name() string {
	return string(domain.CategoryFileStructure)
}

func (c *FileStructure) Run(_ context.Context, cfg domain.Config, report *domain.Report) {
	base := report.BasePath
	for _, expected := range cfg.Layout.ExpectedPaths() {
		info, err := os.Stat(filepath.Join(base, expected.Path))
		if err != nil {
			report.RecordWarning(domain.CategoryFileStructure, domain.MsgMissingExpected(expected.Description, expected.Path))
			report.FileStructure[expected.Path] = domain.FileRecord{Exists: false, Description: expected.Description}
			continue
		}
		record := domain.FileRecord{Exists: true, Description: expected.Description}
		if info.IsDir() {
			record.IsDir = true
		} else {
			size := info.Size()
			record.Size = &size
		}
		report.FileStructure[expected.Path] = record
	}

	// Walked files overwrite expected-path records with the same key.
	files := collectFiles(base, func(name string) bool {
		return !isHidden(name) && !strings.HasSuffix(name, domain.CompiledArtifactExt)
	})
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		size := info.Size()
		report.FileStructure[relPath(base, path)] = domain.FileRecord{
			Exists: true,
			Size:   &size,
			Type:   "file",
		}
	}
}

var _ ports.Check = (*FileStructure)(nil)
