package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/speakgenie/genie-support/internal/core"
)

// Generation parameters are fixed product-wide: short, slightly creative
// support answers.
const (
	temperature = 0.7
	maxTokens   = 500
)

// ErrNoAPIKey is returned when a chat is attempted without a configured
// provider credential.
var ErrNoAPIKey = errors.New("openai api key is not configured")

// OpenAI calls the chat-completions endpoint directly with the server-held
// credential. No retries, no streaming.
type OpenAI struct {
	baseProvider
}

func NewOpenAI(baseURL, apiKey, model string) *OpenAI {
	return &OpenAI{
		baseProvider: newBaseProvider(baseURL, apiKey, model),
	}
}

func (o *OpenAI) Chat(ctx context.Context, messages []core.Message) (core.Message, error) {
	if o.apiKey == "" {
		return core.Message{}, ErrNoAPIKey
	}

	payload := map[string]any{
		"model":       o.model,
		"messages":    messages,
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + o.apiKey,
	}

	resp, err := o.doRequest(ctx, http.MethodPost, "/v1/chat/completions", payload, headers)
	if err != nil {
		return core.Message{}, err
	}
	defer resp.Body.Close()

	return parseChatResponse(resp)
}

func parseChatResponse(resp *http.Response) (core.Message, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.Message{}, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return core.Message{}, &UpstreamError{Status: resp.StatusCode, Body: string(data)}
	}

	var result struct {
		Choices []struct {
			Message core.Message `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return core.Message{}, fmt.Errorf("decode: %w", err)
	}
	if len(result.Choices) == 0 {
		return core.Message{}, fmt.Errorf("empty choices: %s", string(data))
	}
	return result.Choices[0].Message, nil
}
