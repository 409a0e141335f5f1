package llm

import (
	"context"
	"fmt"

	"github.com/speakgenie/genie-support/internal/config"
	"github.com/speakgenie/genie-support/internal/core"
	"github.com/speakgenie/genie-support/pkg/log"
)

// NewProvider creates the AIProvider the orchestrator talks to, based on
// configuration: the model provider directly, or a running relay server.
func NewProvider(ctx context.Context, appCfg *config.AppConfig, aiCfg *config.OpenAIConfig) (core.AIProvider, error) {
	log.FromCtx(ctx).Info().
		Str("provider", appCfg.LLMProvider).
		Str("model", aiCfg.Model).
		Msg("starting llm provider")

	switch appCfg.LLMProvider {
	case "openai":
		if aiCfg.APIKey == "" {
			return nil, ErrNoAPIKey
		}
		return NewOpenAI(aiCfg.BaseURL, aiCfg.APIKey, aiCfg.Model), nil
	case "relay":
		return NewRelay(appCfg.RelayURL), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", appCfg.LLMProvider)
	}
}
