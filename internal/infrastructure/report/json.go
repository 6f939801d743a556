package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// JSONWriter persists the report as indented JSON. When path is empty the
// file is written inside the report's base path under fileName.
type JSONWriter struct {
	name     string
	path     string
	fileName string
	notify   io.Writer
	makeDirs bool
}

// NewBaseJSONWriter writes <base_path>/<fileName>. The base path is never
// created: a missing project directory makes the write fail.
func NewBaseJSONWriter(fileName string, notify io.Writer) *JSONWriter {
	return &JSONWriter{name: "json", fileName: fileName, notify: notify}
}

// NewJSONFileWriter writes to a fixed path, creating parent directories.
func NewJSONFileWriter(path string, notify io.Writer) *JSONWriter {
	return &JSONWriter{name: "output", path: path, notify: notify, makeDirs: true}
}

func (j *JSONWriter) Name() string {
	return j.name
}

// Target resolves where the report will be written.
func (j *JSONWriter) Target(report *domain.Report) string {
	if j.path != "" {
		return j.path
	}
	return filepath.Join(report.BasePath, j.fileName)
}

// Publish implements ports.ReportSink.
func (j *JSONWriter) Publish(_ context.Context, report *domain.Report) error {
	target := j.Target(report)
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if j.makeDirs {
		if err := os.MkdirAll(filepath.Dir(target), domain.DirectoryPermissions); err != nil {
			return fmt.Errorf("could not save report to %s: %w", target, err)
		}
	}
	if err := WriteFileAtomic(target, append(data, '\n')); err != nil {
		return fmt.Errorf("could not save report to %s: %w", target, err)
	}
	if j.notify != nil {
		fmt.Fprintf(j.notify, "Detailed report saved to: %s\n", target)
	}
	return nil
}

// WriteFileAtomic writes bytes to a temp file then renames into place. The
// parent directory must already exist.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.ReportFilePermissions)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return syncDir(dir)
}

func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	d, err := os.Open(dir)
	if err != nil {
		return nil
	}
	defer d.Close()
	return d.Sync()
}

var _ ports.ReportSink = (*JSONWriter)(nil)
