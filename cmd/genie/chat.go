package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/speakgenie/genie-support/internal/config"
	"github.com/speakgenie/genie-support/internal/core"
	"github.com/speakgenie/genie-support/internal/providers/speech"
	"github.com/speakgenie/genie-support/internal/transport/cli"
	"github.com/speakgenie/genie-support/pkg/log"
)

var (
	chatMode     string
	chatLanguage string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the support assistant in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			logger.Fatal().Err(err).Msg("failed to init env")
		}
		appCfg := config.NewAppConfig(ctx)

		profile := core.UserProfile{
			ID:   "cli-local",
			Name: "Local User",
			Type: chatMode,
			Preferences: core.Preferences{
				Accent:   core.AccentIndian,
				Language: chatLanguage,
			},
		}
		session := newSessionFactory(ctx, appCfg, speech.NewNoopSynthesizer())("cli-local", profile)

		rl, err := cli.NewReadLine(session, appCfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := rl.Shutdown(ctx); err != nil {
				logger.Error().Err(err).Msg("failed to close readline")
			}
		}()

		// The read loop owns the terminal, so it runs in the foreground.
		if err := rl.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatMode, "mode", core.UserParent, "audience mode: parent or kid")
	chatCmd.Flags().StringVar(&chatLanguage, "language", "english", "reply language (english, hindi, hinglish, ...)")
	rootCmd.AddCommand(chatCmd)
}
