package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/webdiag/internal/domain"
	"github.com/doeshing/webdiag/internal/ports"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(env *Env) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past diagnostic runs",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(env),
		newHistoryClearCommand(env),
		newHistoryPathCommand(env),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(env *Env) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf(ErrInvalidLimit)
			}
			store, err := historyStore(cmd, env)
			if err != nil {
				return err
			}
			return listHistoryEntries(cmd.OutOrStdout(), store, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show (0 for all)")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(cmd, env)
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgHistoryCleared)
			return nil
		},
	}
}

// newHistoryPathCommand creates the 'history path' subcommand
func newHistoryPathCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the history database location",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(cmd, env)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return nil
		},
	}
}

func historyStore(cmd *cobra.Command, env *Env) (ports.RunHistoryRepository, error) {
	container, err := env.Container(cmd.Context())
	if err != nil {
		return nil, err
	}
	if container.HistoryStore == nil {
		return nil, fmt.Errorf(ErrHistoryDisabled)
	}
	return container.HistoryStore, nil
}

// listHistoryEntries prints one line per run
func listHistoryEntries(out io.Writer, store ports.RunHistoryRepository, limit int) error {
	records, err := store.Records(limit)
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	for _, rec := range records {
		status := "complete"
		if rec.Partial {
			status = "partial"
		}
		fmt.Fprintf(out, "%s | %s | %d issues, %d warnings, %d info | %s\n",
			rec.Timestamp.Local().Format(domain.TimestampFormat),
			rec.BasePath,
			rec.Issues,
			rec.Warnings,
			rec.Info,
			status)
	}

	return nil
}
