package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/infrastructure/report"
	"github.com/doeshing/webdiag/internal/ports"
)

// RunOptions are the per-run flags shared by the root, run and watch commands.
type RunOptions struct {
	Path   string
	Output string
}

// BindRunFlags registers --path and --output on cmd.
func BindRunFlags(cmd *cobra.Command, opts *RunOptions) {
	cmd.Flags().StringVarP(&opts.Path, "path", "p", ".", "Path to the web application to diagnose")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Also write the JSON report to this file")
}

// NewRunCommand creates the run command.
func NewRunCommand(env *Env) *cobra.Command {
	opts := &RunOptions{}
	cmd := &cobra.Command{
		Use:     "run",
		Aliases: []string{"doctor"},
		Short:   "Diagnose a web application once",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := RunDiagnostic(cmd.Context(), env, *opts)
			return err
		},
	}
	BindRunFlags(cmd, opts)
	return cmd
}

// RunDiagnostic performs one run and publishes it to every sink. Findings never
// produce an error; only setup failures do.
func RunDiagnostic(ctx context.Context, env *Env, opts RunOptions) (*domain.Report, error) {
	container, err := env.Container(ctx)
	if err != nil {
		return nil, err
	}
	if container.DiagnoseService == nil {
		return nil, fmt.Errorf("diagnose service unavailable")
	}

	var extra []ports.ReportSink
	if opts.Output != "" {
		extra = append(extra, report.NewJSONFileWriter(opts.Output, container.Out))
	}
	return container.DiagnoseService.Run(ctx, opts.Path, extra...)
}
