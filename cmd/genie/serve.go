package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/speakgenie/genie-support/pkg/log"
	"github.com/speakgenie/genie-support/pkg/srv"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the relay server and configured transports",
	Long:  `Starts the model relay HTTP server and, when ENABLE_TELEGRAM is set, the Telegram support bot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting genie support")

		services := NewServices(ctx)

		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("genie support has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
