package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/doeshing/webdiag/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	Out     io.Writer
	Err     io.Writer
}

// NewRootCmd wires the cobra root command. Running it without a subcommand
// diagnoses the project at --path.
func NewRootCmd(opts Options) *cobra.Command {
	env := &commands.Env{Verbose: opts.Verbose, Out: opts.Out, LogOut: opts.Err}
	runOpts := &commands.RunOptions{}

	root := &cobra.Command{
		Use:   "webdiag",
		Short: "Diagnose a deployed Flask-style web application",
		Long: "webdiag inspects the files, configuration, dependencies, databases and\n" +
			"deployment wiring of a Python web application and reports what is broken\n" +
			"together with suggested fixes.",
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if env.NoColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := commands.RunDiagnostic(cmd.Context(), env, *runOpts)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&env.ConfigPath, "config", "", "Config file (default $WEBDIAG_CONFIG or ~/.webdiag/config.yaml)")
	flags.BoolVarP(&env.Verbose, "verbose", "v", opts.Verbose, "Enable debug logging")
	flags.BoolVar(&env.NoColor, "no-color", false, "Disable colored output")
	commands.BindRunFlags(root, runOpts)

	root.AddCommand(
		commands.NewRunCommand(env),
		commands.NewWatchCommand(env),
		commands.NewHistoryCommand(env),
		commands.NewConfigCommand(env),
		commands.NewVersionCommand(env),
	)
	return root
}
