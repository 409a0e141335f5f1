package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speakgenie/genie-support/internal/core"
	"github.com/speakgenie/genie-support/internal/providers/llm"
)

type fakeAI struct {
	reply    string
	err      error
	received []core.Message
}

func (f *fakeAI) Chat(_ context.Context, messages []core.Message) (core.Message, error) {
	f.received = messages
	if f.err != nil {
		return core.Message{}, f.err
	}
	return core.Message{Role: core.RoleAssistant, Content: f.reply}, nil
}

type panickyAI struct{}

func (panickyAI) Chat(context.Context, []core.Message) (core.Message, error) {
	panic("boom")
}

func postChat(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestChatSuccess(t *testing.T) {
	ai := &fakeAI{reply: "Hello from Genie!"}
	srv := NewServer(0, ai)

	rec := postChat(t, srv.Handler(), `{"messages":[{"role":"system","content":"sys"},{"role":"user","content":"hi"}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Hello from Genie!", body.Content)

	require.Len(t, ai.received, 2)
	assert.Equal(t, core.RoleSystem, ai.received[0].Role)
	assert.Equal(t, "hi", ai.received[1].Content)
}

func TestChatRejectsMissingMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"empty array", `{"messages":[]}`},
		{"not json", `not json at all`},
		{"wrong type", `{"messages":"hello"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &fakeAI{reply: "unused"}
			srv := NewServer(0, ai)

			rec := postChat(t, srv.Handler(), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeError(t, rec))
			assert.Nil(t, ai.received)
		})
	}
}

func TestChatRejectsGet(t *testing.T) {
	srv := NewServer(0, &fakeAI{})

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestChatPropagatesUpstreamStatus(t *testing.T) {
	ai := &fakeAI{err: &llm.UpstreamError{Status: http.StatusTooManyRequests, Body: "rate limited"}}
	srv := NewServer(0, ai)

	rec := postChat(t, srv.Handler(), `{"messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, decodeError(t, rec), "429")
}

func TestChatMissingKey(t *testing.T) {
	ai := &fakeAI{err: llm.ErrNoAPIKey}
	srv := NewServer(0, ai)

	rec := postChat(t, srv.Handler(), `{"messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "OpenAI API key not configured", decodeError(t, rec))
}

func TestChatGenericFailure(t *testing.T) {
	ai := &fakeAI{err: errors.New("dial tcp: connection refused")}
	srv := NewServer(0, ai)

	rec := postChat(t, srv.Handler(), `{"messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Transport details never leak to the client.
	assert.Equal(t, "Failed to get response from AI", decodeError(t, rec))
}

func TestChatRecoversFromPanic(t *testing.T) {
	srv := NewServer(0, panickyAI{})

	rec := postChat(t, srv.Handler(), `{"messages":[{"role":"user","content":"hi"}]}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec))
}

func TestHealth(t *testing.T) {
	srv := NewServer(0, &fakeAI{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRelayRoundTrip(t *testing.T) {
	// A relay provider pointed at the server completes a full round trip.
	srv := NewServer(0, &fakeAI{reply: "round trip"})
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	relay := llm.NewRelay(ts.URL)
	reply, err := relay.Chat(context.Background(), []core.Message{
		{Role: core.RoleUser, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "round trip", reply.Content)
	assert.Equal(t, core.RoleAssistant, reply.Role)
}
