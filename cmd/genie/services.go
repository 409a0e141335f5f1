package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/speakgenie/genie-support/internal/config"
	"github.com/speakgenie/genie-support/internal/core"
	"github.com/speakgenie/genie-support/internal/knowledge"
	"github.com/speakgenie/genie-support/internal/prompt"
	"github.com/speakgenie/genie-support/internal/providers/llm"
	"github.com/speakgenie/genie-support/internal/providers/speech"
	"github.com/speakgenie/genie-support/internal/service/chat"
	"github.com/speakgenie/genie-support/internal/storage/memory"
	"github.com/speakgenie/genie-support/internal/transport/httpapi"
	"github.com/speakgenie/genie-support/internal/transport/telegram"
	"github.com/speakgenie/genie-support/pkg/log"
	"github.com/speakgenie/genie-support/pkg/srv"
)

// NewServices wires everything the serve command runs: the relay server and,
// when enabled, the Telegram bot.
func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	aiCfg := config.NewOpenAIConfig(ctx)

	// 2. Relay server. It always talks to the model provider directly; the
	// missing-key case surfaces per request, not at startup.
	upstream := llm.NewOpenAI(aiCfg.BaseURL, aiCfg.APIKey, aiCfg.Model)
	services = append(services, httpapi.NewServer(appCfg.Port, upstream))

	// 3. Telegram bot
	if appCfg.EnableTelegram {
		synth := speech.NewNoopSynthesizer()
		services = append(services, srv.NewCleanup(func() error {
			synth.Stop()
			return nil
		}))

		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, newSessionFactory(ctx, appCfg, synth))
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
		}
		services = append(services, bot)
	}

	return services
}

// newSessionFactory builds the shared collaborators once and hands out
// per-session orchestrators on demand.
func newSessionFactory(ctx context.Context, appCfg *config.AppConfig, synth core.Synthesizer) telegram.SessionFactory {
	logger := log.FromCtx(ctx)

	corpus, err := knowledge.Load(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load knowledge corpus")
	}
	search := knowledge.NewSearch(corpus)
	prompts := prompt.NewBuilder()
	history := memory.NewHistoryRepo()

	aiCfg := config.NewOpenAIConfig(ctx)
	provider, err := llm.NewProvider(ctx, appCfg, aiCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	return func(sessionID string, profile core.UserProfile) *chat.Orchestrator {
		return chat.NewOrchestrator(
			chat.Options{
				SessionID:      sessionID,
				Profile:        profile,
				HistoryWindow:  appCfg.HistoryWindow,
				KnowledgeLimit: appCfg.KnowledgeLimit,
			},
			search,
			prompts,
			provider,
			synth,
			history,
		)
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
