package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Chandanabr23/ZenBoard/internal/app"
	"github.com/Chandanabr23/ZenBoard/internal/config"
	"github.com/Chandanabr23/ZenBoard/pkg/logger/slogx"
)

var (
	cfg config.Config

	logLevel string
	pretty   bool
	baseURL  string
)

var rootCmd = &cobra.Command{
	Use:   "zenboard",
	Short: "Spatial sticky notes backed by a notes API",
	Long: `ZenBoard keeps a board of freeform notes in sync with a notes backend.
Edits apply locally at once and reach the backend after a short quiet period;
drags are saved once, on release.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.Parse(); err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.App.LogLevel = logLevel
		}
		if flags.Changed("pretty") {
			cfg.App.Pretty = pretty
		}
		if flags.Changed("base-url") {
			cfg.API.BaseURL = baseURL
		}

		if err := slogx.InitGlobal(os.Stderr, cfg.App.LogLevel, cfg.App.Pretty); err != nil {
			return fmt.Errorf("init logger: %v", err)
		}

		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.BoolVar(&pretty, "pretty", false, "human readable logs")
	flags.StringVar(&baseURL, "base-url", "", "notes backend base URL")
}

// runBoard runs fn against a live board and flushes unsaved edits afterwards.
// SIGINT and SIGTERM end fn early through its context.
func runBoard(cmd *cobra.Command, fn func(ctx context.Context, b *app.Board) error) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	b, err := app.New(cfg, nil)
	if err != nil {
		return fmt.Errorf("init board: %v", err)
	}

	slogx.Debug(ctx, "board started", slogx.BaseURL(cfg.API.BaseURL))

	return b.Run(ctx, func(ctx context.Context) error { return fn(ctx, b) })
}
