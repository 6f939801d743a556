package checks

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// versionDelimiters end the package name in a requirement line, tried in order.
var versionDelimiters = []string{"==", ">=", "<="}

// RequirementName extracts the bare package name from a requirement line.
func RequirementName(line string) string {
	name := line
	for _, delim := range versionDelimiters {
		if idx := strings.Index(name, delim); idx >= 0 {
			name = name[:idx]
		}
	}
	return strings.TrimSpace(name)
}

// MissingPackages returns required names not found in the installed listing.
// A name counts as installed when it occurs anywhere in the listing,
// case-insensitively, so "flask" is satisfied by "Flask-Login" alone.
func MissingPackages(requirements []string, installed string) []string {
	listing := strings.ToLower(installed)
	missing := []string{}
	for _, line := range requirements {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		name := RequirementName(trimmed)
		if !strings.Contains(listing, strings.ToLower(name)) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Dependencies compares the manifest against installed packages.
type Dependencies struct {
	Lister ports.PackageLister
}

// NewDependencies creates the dependency check.
func NewDependencies(lister ports.PackageLister) *Dependencies {
	return &Dependencies{Lister: lister}
}

func (c *Dependencies) Name() string {
	return string(domain.CategoryDependencies)
}

func (c *Dependencies) Run(ctx context.Context, cfg domain.Config, report *domain.Report) {
	manifest := cfg.Layout.ManifestFile
	data, err := os.ReadFile(filepath.Join(report.BasePath, manifest))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.RecordWarning(domain.CategoryDependencies, domain.MsgManifestNotFound(manifest))
		} else {
			report.RecordError(domain.CategoryDependencies, domain.MsgManifestReadError(manifest, err))
		}
		return
	}

	requirements := strings.Split(strings.TrimSpace(string(data)), "\n")
	for i := range requirements {
		requirements[i] = strings.TrimRight(requirements[i], "\r")
	}
	report.Dependencies["requirements_file"] = requirements

	if c.Lister == nil {
		report.RecordWarning(domain.CategoryDependencies, domain.MsgPackageQueryFailed(errors.New("no package manager configured")))
		return
	}
	installed, err := c.Lister.ListInstalled(ctx, report.BasePath)
	if err != nil {
		report.RecordWarning(domain.CategoryDependencies, domain.MsgPackageQueryFailed(err))
		return
	}

	missing := MissingPackages(requirements, installed)
	report.Dependencies["missing_packages"] = missing
	if len(missing) > 0 {
		report.RecordError(domain.CategoryDependencies, domain.MsgMissingPackages(missing))
	} else {
		report.RecordInfo(domain.CategoryDependencies, domain.MsgAllPackagesInstalled)
	}
}

var _ ports.Check = (*Dependencies)(nil)
