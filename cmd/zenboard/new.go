package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Chandanabr23/ZenBoard/internal/app"
	"github.com/Chandanabr23/ZenBoard/internal/entity"
	"github.com/Chandanabr23/ZenBoard/internal/eventloop"
)

var (
	newCount   int
	newContent string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create notes near the middle of the board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if newCount < 1 {
			return fmt.Errorf("count must be positive, got %d", newCount)
		}

		return runBoard(cmd, func(ctx context.Context, b *app.Board) error {
			for range newCount {
				var f *eventloop.Future[entity.Note]
				if err := b.Do(ctx, func() { f = b.Notes().Create(ctx) }); err != nil {
					return err
				}

				note, err := f.Wait(ctx)
				if err != nil {
					return fmt.Errorf("create note: %v", err)
				}

				if newContent != "" {
					var updateErr error
					if err := b.Do(ctx, func() {
						updateErr = b.Notes().Update(ctx, note.ID, entity.ContentField(newContent))
					}); err != nil {
						return err
					}
					if updateErr != nil {
						return updateErr
					}
				}

				fmt.Fprintln(cmd.OutOrStdout(), note.ID)
			}

			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().IntVarP(&newCount, "count", "n", 1, "number of notes to create")
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "initial content")
}
