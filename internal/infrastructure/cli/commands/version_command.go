package commands

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	configinfra "github.com/doeshing/webdiag/internal/infrastructure/config"
	"github.com/doeshing/webdiag/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show webdiag version and the interpreter it will use",
		RunE: func(cmd *cobra.Command, args []string) error {
			return displayVersionInformation(cmd.Context(), cmd.OutOrStdout(), env.ConfigLoader())
		},
	}
}

// displayVersionInformation prints build metadata followed by the
// configuration that the next run would pick up. A broken config file is
// reported inline rather than failing the command.
func displayVersionInformation(ctx context.Context, out io.Writer, loader *configinfra.FileLoader) error {
	fmt.Fprintf(out, "webdiag version %s\n", version.Version)

	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}

	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}

	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "Config: %s\n", loader.Path())

	cfg, err := loader.Load(ctx)
	if err != nil {
		fmt.Fprintf(out, "Python: unknown (%v)\n", err)
		return nil
	}
	fmt.Fprintf(out, "Python: %s (package query timeout %s, introspection timeout %s)\n",
		cfg.Python.Executable,
		cfg.Python.PackageQueryTimeout,
		cfg.Python.IntrospectTimeout)

	return nil
}
