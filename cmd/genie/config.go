package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/speakgenie/genie-support/internal/config"
	"github.com/speakgenie/genie-support/pkg/env"
	"github.com/speakgenie/genie-support/pkg/log"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as .env content",
	Long:  `Resolves configuration from the environment and the runtime .env file and prints it in .env format. Secrets are redacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			logger.Fatal().Err(err).Msg("failed to init env")
		}

		appCfg := config.NewAppConfig(ctx)
		aiCfg := config.NewOpenAIConfig(ctx)
		if aiCfg.APIKey != "" {
			aiCfg.APIKey = "***"
		}

		for _, c := range []any{appCfg, aiCfg} {
			content, err := env.MarshalEnv(c)
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			fmt.Print(content)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
