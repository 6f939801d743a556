package report

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

const ruleWidth = 80

// ConsoleRenderer prints the human-readable summary of a report.
type ConsoleRenderer struct {
	out     io.Writer
	heading *color.Color
	bad     *color.Color
	warn    *color.Color
	good    *color.Color
}

// NewConsoleRenderer writes to out. Colors follow color.NoColor.
func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{
		out:     out,
		heading: color.New(color.Bold),
		bad:     color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		good:    color.New(color.FgGreen),
	}
}

func (r *ConsoleRenderer) Name() string {
	return "console"
}

// Publish implements ports.ReportSink.
func (r *ConsoleRenderer) Publish(_ context.Context, report *domain.Report) error {
	w := &errWriter{w: r.out}
	r.render(w, report)
	return w.err
}

func (r *ConsoleRenderer) render(w *errWriter, report *domain.Report) {
	rule := strings.Repeat("=", ruleWidth)
	w.println()
	w.println(rule)
	w.println(r.heading.Sprint("WEB APPLICATION DIAGNOSTIC REPORT"))
	w.println(rule)
	if report.Partial {
		w.println(r.warn.Sprint("Run did not complete; results are partial."))
	}

	summary := report.Summary()
	w.println()
	w.println(r.heading.Sprint("SUMMARY:"))
	w.printf("   - Total Issues: %d\n", summary.Issues)
	w.printf("   - Warnings: %d\n", summary.Warnings)
	w.printf("   - Info Messages: %d\n", summary.Info)

	r.renderFindings(w, "CRITICAL ISSUES:", report.Issues, r.bad)
	r.renderFindings(w, "WARNINGS:", report.Warnings, r.warn)
	r.renderFiles(w, report.FileStructure)
	r.renderFlaskConfig(w, report.Configurations["flask_config"])
	r.renderDatabases(w, report.DatabaseStatus)
	r.renderSolutions(w, report.Solutions)
	w.println()
	w.println(rule)
}

func (r *ConsoleRenderer) renderFindings(w *errWriter, title string, findings []domain.Finding, c *color.Color) {
	if len(findings) == 0 {
		return
	}
	w.println()
	w.println(c.Sprint(title))
	for _, f := range findings {
		w.printf("   - [%s] %s\n", strings.ToUpper(string(f.Category)), f.Message)
	}
}

func (r *ConsoleRenderer) renderFiles(w *errWriter, files map[string]domain.FileRecord) {
	w.println()
	w.println(r.heading.Sprint("FILE STRUCTURE ANALYSIS:"))
	for _, path := range sortedKeys(files) {
		record := files[path]
		if !record.Exists {
			continue
		}
		size := ""
		if record.Size != nil && !record.IsDir {
			size = fmt.Sprintf(" (%d bytes)", *record.Size)
		}
		w.printf("   %s %s%s\n", r.good.Sprint("[OK]"), path, size)
	}
}

func (r *ConsoleRenderer) renderFlaskConfig(w *errWriter, facts domain.Facts) {
	if len(facts) == 0 {
		return
	}
	w.println()
	w.println(r.heading.Sprint("FLASK CONFIGURATION:"))
	for _, key := range sortedKeys(facts) {
		w.printf("   - %s: %v\n", key, facts[key])
	}
}

func (r *ConsoleRenderer) renderDatabases(w *errWriter, statuses map[string]domain.DatabaseStatus) {
	if len(statuses) == 0 {
		return
	}
	w.println()
	w.println(r.heading.Sprint("DATABASE STATUS:"))
	for _, path := range sortedKeys(statuses) {
		status := statuses[path]
		mark := r.good.Sprint("[OK]")
		if !status.Accessible {
			mark = r.bad.Sprint("[FAIL]")
		}
		w.printf("   %s %s\n", mark, path)
		for _, table := range sortedKeys(status.Tables) {
			w.printf("      - %s: %d records\n", table, status.Tables[table])
		}
	}
}

func (r *ConsoleRenderer) renderSolutions(w *errWriter, solutions []domain.Solution) {
	if len(solutions) == 0 {
		return
	}
	w.println()
	w.println(r.heading.Sprint("RECOMMENDED SOLUTIONS:"))
	for i, s := range solutions {
		w.printf("\n   %d. Issue: %s\n", i+1, s.Issue)
		w.printf("      Solution: %s\n", s.Solution)
		if s.CodeExample != "" {
			w.printf("      Code Example:\n%s\n", s.CodeExample)
		}
		if s.Command != "" {
			w.printf("      Command: %s\n", s.Command)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// errWriter keeps the first write error so rendering code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, args...)
}

var _ ports.ReportSink = (*ConsoleRenderer)(nil)
