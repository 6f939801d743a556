package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/webdiag/internal/infrastructure/watch"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(env *Env) *cobra.Command {
	opts := &RunOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the diagnostic whenever project files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchProject(cmd.Context(), env, *opts)
		},
	}
	BindRunFlags(cmd, opts)
	return cmd
}

func watchProject(ctx context.Context, env *Env, opts RunOptions) error {
	container, err := env.Container(ctx)
	if err != nil {
		return err
	}
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	root, err := filepath.Abs(opts.Path)
	if err != nil {
		return err
	}

	if _, err := RunDiagnostic(ctx, env, opts); err != nil {
		return err
	}
	fmt.Fprintf(container.Out, MsgWatching+"\n", root)

	ignore := watch.ReportArtifacts(cfg.Report.FileName)
	if opts.Output != "" {
		if out, err := filepath.Abs(opts.Output); err == nil {
			base := ignore
			ignore = func(path string) bool { return strings.HasPrefix(path, out) || base(path) }
		}
	}

	w := watch.New(root, ignore, container.Logger)
	return w.Run(ctx, func(ctx context.Context) {
		if _, err := RunDiagnostic(ctx, env, opts); err != nil {
			container.Logger.Error("watch run failed", err, map[string]interface{}{"path": root})
		}
	})
}
