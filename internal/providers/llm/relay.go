package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/speakgenie/genie-support/internal/core"
)

// Relay is an AIProvider that talks to a running relay server instead of the
// model provider directly. Widget deployments use this so the provider
// credential never leaves the backend.
type Relay struct {
	baseProvider
}

func NewRelay(baseURL string) *Relay {
	return &Relay{
		baseProvider: newBaseProvider(baseURL, "", ""),
	}
}

func (r *Relay) Chat(ctx context.Context, messages []core.Message) (core.Message, error) {
	payload := map[string]any{
		"messages": messages,
	}

	resp, err := r.doRequest(ctx, http.MethodPost, "/api/chat", payload, nil)
	if err != nil {
		return core.Message{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.Message{}, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return core.Message{}, &UpstreamError{Status: resp.StatusCode, Body: string(data)}
	}

	var result struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return core.Message{}, fmt.Errorf("decode: %w", err)
	}
	return core.Message{Role: core.RoleAssistant, Content: result.Content}, nil
}
