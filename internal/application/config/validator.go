package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/doeshing/webdiag/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateLayout(cfg.Layout); err != nil {
		return err
	}
	if err := validatePython(cfg.Python); err != nil {
		return err
	}
	return validateReport(cfg.Report)
}

func validateLayout(layout domain.LayoutSettings) error {
	fields := map[string]string{
		"layout.entry_file":        layout.EntryFile,
		"layout.manifest_file":     layout.ManifestFile,
		"layout.server_entry_file": layout.ServerEntryFile,
		"layout.templates_dir":     layout.TemplatesDir,
		"layout.static_dir":        layout.StaticDir,
		"layout.instance_dir":      layout.InstanceDir,
	}
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("%s must be set", name)
		}
		if filepath.IsAbs(value) || strings.HasPrefix(filepath.Clean(value), "..") {
			return fmt.Errorf("%s must be relative to the base path, got %s", name, value)
		}
	}
	return nil
}

func validatePython(py domain.PythonSettings) error {
	if py.Executable == "" {
		return fmt.Errorf("python.executable must be set")
	}
	if py.PackageQueryTimeout < 0 {
		return fmt.Errorf("python.package_query_timeout must be >= 0")
	}
	if py.IntrospectTimeout < 0 {
		return fmt.Errorf("python.introspect_timeout must be >= 0")
	}
	return nil
}

func validateReport(report domain.ReportSettings) error {
	if report.FileName == "" {
		return fmt.Errorf("report.file_name must be set")
	}
	if filepath.Base(report.FileName) != report.FileName {
		return fmt.Errorf("report.file_name must be a bare file name, got %s", report.FileName)
	}
	return nil
}
