// Package chat coordinates one support conversation: knowledge retrieval,
// prompt assembly, the model call, history bookkeeping, and optional speech
// playback.
package chat

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/speakgenie/genie-support/internal/core"
	"github.com/speakgenie/genie-support/internal/knowledge"
	"github.com/speakgenie/genie-support/internal/prompt"
	"github.com/speakgenie/genie-support/internal/providers/speech"
	"github.com/speakgenie/genie-support/pkg/log"
)

// ErrEmptyMessage is returned when a send carries no text. It never reaches
// the transcript.
var ErrEmptyMessage = errors.New("message is empty")

// Orchestrator owns a single session: its profile, transcript, and one
// instance of each collaborator. Sends are serialized; a second SendMessage
// issued while one is in flight blocks until the first turn completes, so
// history order always matches turn order.
type Orchestrator struct {
	mu        sync.Mutex
	sessionID string
	profile   core.UserProfile

	search  *knowledge.Search
	prompts *prompt.Builder
	ai      core.AIProvider
	tts     core.Synthesizer
	history core.HistoryRepository

	historyWindow  int
	knowledgeLimit int
}

type Options struct {
	SessionID      string
	Profile        core.UserProfile
	HistoryWindow  int
	KnowledgeLimit int
}

func NewOrchestrator(
	opts Options,
	search *knowledge.Search,
	prompts *prompt.Builder,
	ai core.AIProvider,
	tts core.Synthesizer,
	history core.HistoryRepository,
) *Orchestrator {
	window := opts.HistoryWindow
	if window <= 0 {
		window = 5
	}
	limit := opts.KnowledgeLimit
	if limit <= 0 {
		limit = knowledge.DefaultLimit
	}
	return &Orchestrator{
		sessionID:      opts.SessionID,
		profile:        opts.Profile,
		search:         search,
		prompts:        prompts,
		ai:             ai,
		tts:            tts,
		history:        history,
		historyWindow:  window,
		knowledgeLimit: limit,
	}
}

// SendMessage runs one conversation turn. The user entry is appended
// immediately; the reply (or the fixed apology on provider failure) follows.
// Provider failures never surface as errors: the caller always gets a
// well-formed assistant message.
func (o *Orchestrator) SendMessage(ctx context.Context, content, inputType string) (core.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return core.ChatMessage{}, ErrEmptyMessage
	}
	if inputType != core.InputVoice {
		inputType = core.InputText
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	logger := log.FromCtx(ctx)

	// Window over the history as it stood before this turn; the new user
	// turn is appended to the payload explicitly.
	prior, err := o.history.Recent(ctx, o.sessionID, o.historyWindow)
	if err != nil {
		return core.ChatMessage{}, err
	}

	userMsg := newChatMessage(content, core.RoleUser, inputType)
	if err := o.history.Append(ctx, o.sessionID, userMsg); err != nil {
		return core.ChatMessage{}, err
	}

	snippets := o.search.Relevant(content, o.knowledgeLimit)
	systemPrompt := o.prompts.Build(o.profile, snippets)

	messages := make([]core.Message, 0, len(prior)+2)
	messages = append(messages, core.Message{Role: core.RoleSystem, Content: systemPrompt})
	for _, m := range prior {
		messages = append(messages, core.Message{Role: m.Sender, Content: m.Content})
	}
	messages = append(messages, core.Message{Role: core.RoleUser, Content: content})

	reply, err := o.ai.Chat(ctx, messages)
	if err != nil {
		logger.Error().Err(err).Str("session", o.sessionID).Msg("chat provider failed")

		apologyMsg := newChatMessage(prompt.Apology, core.RoleAssistant, core.InputText)
		if appendErr := o.history.Append(ctx, o.sessionID, apologyMsg); appendErr != nil {
			return core.ChatMessage{}, appendErr
		}
		return apologyMsg, nil
	}

	assistantMsg := newChatMessage(reply.Content, core.RoleAssistant, core.InputText)
	if err := o.history.Append(ctx, o.sessionID, assistantMsg); err != nil {
		return core.ChatMessage{}, err
	}

	o.speak(ctx, reply.Content)

	return assistantMsg, nil
}

// EscalateToHuman appends the localized escalation confirmation and emits a
// diagnostic record with the last turns of context. No network call is made.
func (o *Orchestrator) EscalateToHuman(ctx context.Context) (core.ChatMessage, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	msg := newChatMessage(prompt.EscalationMessage(o.profile.Preferences.Language), core.RoleAssistant, core.InputText)
	if err := o.history.Append(ctx, o.sessionID, msg); err != nil {
		return core.ChatMessage{}, err
	}

	recent, _ := o.history.Recent(ctx, o.sessionID, o.historyWindow)
	contents := make([]string, 0, len(recent))
	for _, m := range recent {
		contents = append(contents, m.Sender+": "+m.Content)
	}
	log.FromCtx(ctx).Info().
		Str("user_id", o.profile.ID).
		Strs("context", contents).
		Time("timestamp", msg.Timestamp).
		Msg("chat escalated to human support")

	o.speak(ctx, msg.Content)

	return msg, nil
}

// ClearChat drops the transcript. Profile and preferences are untouched.
func (o *Orchestrator) ClearChat(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.history.Clear(ctx, o.sessionID)
}

// Messages returns the full transcript in chronological order.
func (o *Orchestrator) Messages(ctx context.Context) ([]core.ChatMessage, error) {
	return o.history.All(ctx, o.sessionID)
}

// Profile returns a snapshot of the session profile.
func (o *Orchestrator) Profile() core.UserProfile {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.profile
}

// SetUserType switches the audience framing for subsequent turns.
func (o *Orchestrator) SetUserType(userType string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.profile.Type = userType
}

// SetLanguage switches the reply language for subsequent turns.
func (o *Orchestrator) SetLanguage(language string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.profile.Preferences.Language = language
}

// SetVoiceEnabled toggles speech playback of assistant replies.
func (o *Orchestrator) SetVoiceEnabled(enabled bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.profile.Preferences.VoiceEnabled = enabled
}

// speak plays a reply when voice is enabled. Playback failures are logged
// and swallowed; they never become chat errors.
func (o *Orchestrator) speak(ctx context.Context, text string) {
	if o.tts == nil || !o.profile.Preferences.VoiceEnabled {
		return
	}
	err := o.tts.Speak(ctx, text, o.profile.Preferences.Accent, o.profile.Preferences.Language)
	if err != nil && !speech.IsBenign(err) {
		log.FromCtx(ctx).Warn().Err(err).Msg("text-to-speech failed")
	}
}

// idCounter keeps message ids unique within one process even when two
// messages land on the same nanosecond.
var idCounter atomic.Uint64

func newChatMessage(content, sender, inputType string) core.ChatMessage {
	return core.ChatMessage{
		ID:        strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + strconv.FormatUint(idCounter.Add(1), 10),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now(),
		Type:      inputType,
	}
}
