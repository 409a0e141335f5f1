package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/speakgenie/genie-support/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"GENIE_RUNTIME_PATH" envDefault:".genie"`

	// Provider used by the chat orchestrator: "openai" talks to the model
	// provider directly, "relay" goes through a running relay server.
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"openai"`
	RelayURL    string `env:"RELAY_URL" envDefault:"http://localhost:10000"`

	// Relay server listen port.
	Port int `env:"PORT" envDefault:"10000"`

	// Transport flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`

	// Context management. The history window is a deliberate fixed policy
	// bounding request size, not a token budget.
	HistoryWindow  int `env:"HISTORY_WINDOW" envDefault:"5"`
	KnowledgeLimit int `env:"KNOWLEDGE_LIMIT" envDefault:"3"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}
