package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/webdiag/internal/ports"
)

var stepLabels = map[string]string{
	"file_structure": "Analyzing file structure",
	"app_config":     "Analyzing application configuration",
	"dependencies":   "Analyzing requirements and dependencies",
	"database":       "Analyzing database",
	"templates":      "Analyzing templates",
	"static":         "Analyzing static files",
	"server":         "Analyzing server configuration",
	"permissions":    "Checking permissions",
	"solutions":      "Generating solutions",
}

// StepLabel is the console text for a progress step.
func StepLabel(step string) string {
	if label, ok := stepLabels[step]; ok {
		return label + "..."
	}
	return "Running " + step + "..."
}

// ConsoleProgress prints a start banner and one line per step. With a
// spinner it also animates while the step runs, which covers the slow
// interpreter calls.
type ConsoleProgress struct {
	out     io.Writer
	spinner *Spinner
}

// NewConsoleProgress writes plain progress lines to out. When animate is
// set (out is a terminal) each step also shows a spinner.
func NewConsoleProgress(out io.Writer, animate bool) *ConsoleProgress {
	p := &ConsoleProgress{out: out}
	if animate {
		p.spinner = NewSpinner(out)
	}
	return p
}

func (p *ConsoleProgress) RunStarted(basePath string) {
	fmt.Fprintln(p.out, "Starting web application diagnostic...")
	fmt.Fprintf(p.out, "Base Path: %s\n", basePath)
	fmt.Fprintln(p.out, strings.Repeat("-", ruleWidth))
}

func (p *ConsoleProgress) StepStarted(step string) {
	fmt.Fprintln(p.out, StepLabel(step))
	if p.spinner != nil {
		p.spinner.Start(StepLabel(step))
	}
}

func (p *ConsoleProgress) StepFinished(string) {
	if p.spinner != nil {
		p.spinner.Stop()
	}
}

var _ ports.ProgressReporter = (*ConsoleProgress)(nil)
