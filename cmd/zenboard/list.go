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

var listOutput string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes on the board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := shell.ParseFormat(listOutput)
		if err != nil {
			return err
		}

		return runBoard(cmd, func(ctx context.Context, b *app.Board) error {
			var f *eventloop.Future[[]entity.Note]
			if err := b.Do(ctx, func() { f = b.Notes().Load(ctx) }); err != nil {
				return err
			}

			if _, err := f.Wait(ctx); err != nil {
				return fmt.Errorf("load notes: %v", err)
			}

			return shell.Render(cmd.OutOrStdout(), b.Notes().Snapshot(), format)
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listOutput, "output", "o", string(shell.FormatTable), "output format: table, yaml or json")
}
