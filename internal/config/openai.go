package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/speakgenie/genie-support/pkg/log"
)

// OpenAIConfig carries the server-held provider credential. The key is not
// required at parse time: the relay reports a missing key per request as an
// HTTP 500 instead of refusing to start.
type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
}

func NewOpenAIConfig(ctx context.Context) *OpenAIConfig {
	c := &OpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenAI config")
	}
	return c
}
