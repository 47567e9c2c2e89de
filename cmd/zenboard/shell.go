package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Chandanabr23/ZenBoard/internal/app"
	"github.com/Chandanabr23/ZenBoard/internal/entity"
	"github.com/Chandanabr23/ZenBoard/internal/eventloop"
	"github.com/Chandanabr23/ZenBoard/internal/shell"
)

var shellOutput string

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit the board interactively",
	Long: `Read board commands from stdin, one per line. Type help for the list.
Unsaved edits are flushed to the backend on exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := shell.ParseFormat(shellOutput)
		if err != nil {
			return err
		}

		return runBoard(cmd, func(ctx context.Context, b *app.Board) error {
			var f *eventloop.Future[[]entity.Note]
			if err := b.Do(ctx, func() { f = b.Notes().Load(ctx) }); err != nil {
				return err
			}
			if _, err := f.Wait(ctx); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "initial load failed, starting empty: %v\n", err)
			}

			return shell.New(b, cmd.OutOrStdout(), format).Run(ctx, cmd.InOrStdin())
		})
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().StringVarP(&shellOutput, "output", "o", string(shell.FormatTable), "ls output format: table, yaml or json")
}
