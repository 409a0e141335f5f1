// Package telegram runs the support agent as a Telegram bot. Every chat gets
// its own session with its own transcript and preferences.
package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/speakgenie/genie-support/internal/config"
	"github.com/speakgenie/genie-support/internal/core"
	"github.com/speakgenie/genie-support/internal/service/chat"
	"github.com/speakgenie/genie-support/pkg/log"
)

const baseContextKey = "base_context"

// SessionFactory builds a fresh orchestrator for one Telegram chat.
type SessionFactory func(sessionID string, profile core.UserProfile) *chat.Orchestrator

type Bot struct {
	bot      *tele.Bot
	cfg      *config.TelegramConfig
	sessions *sessionStore
	sender   *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	newSession SessionFactory,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		cfg:      cfg,
		sessions: newSessionStore(newSession),
		sender:   newSender(b),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle("/escalate", bot.handleEscalate)
	b.Handle("/clear", bot.handleClear)
	b.Handle("/language", bot.handleLanguage)
	b.Handle("/mode", bot.handleMode)
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) session(c tele.Context) *chat.Orchestrator {
	return b.sessions.get(c.Chat().ID, c.Sender())
}

func (b *Bot) handleStart(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	b.session(c)
	welcome := fmt.Sprintf("Hi! I'm %s, the SpeakGenie support assistant. Ask me anything about the app, pricing, or your child's learning. Use /escalate to reach a human, /language to switch languages, /clear to start over.", core.GenieName)
	return b.sender.sendMarkdown(ctx, c.Chat(), welcome)
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	_ = c.Notify(tele.Typing)

	reply, err := b.session(c).SendMessage(ctx, c.Text(), core.InputText)
	if err != nil {
		logger.Error().Err(err).Int64("chat", c.Chat().ID).Msg("chat turn failed")
		return nil
	}

	return b.sender.sendMarkdown(ctx, c.Chat(), reply.Content)
}

func (b *Bot) handleEscalate(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	msg, err := b.session(c).EscalateToHuman(ctx)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Int64("chat", c.Chat().ID).Msg("escalation failed")
		return nil
	}
	return b.sender.sendMarkdown(ctx, c.Chat(), msg.Content)
}

func (b *Bot) handleClear(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	if err := b.session(c).ClearChat(ctx); err != nil {
		log.FromCtx(ctx).Error().Err(err).Int64("chat", c.Chat().ID).Msg("clear failed")
		return nil
	}
	return b.sender.sendMarkdown(ctx, c.Chat(), "Chat cleared. How can I help you?")
}

func (b *Bot) handleLanguage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	lang := strings.ToLower(strings.TrimSpace(c.Message().Payload))
	if lang == "" {
		return b.sender.sendMarkdown(ctx, c.Chat(), "Usage: `/language hindi` (or english, hinglish, tamil, bengali, ...)")
	}
	b.session(c).SetLanguage(lang)
	return b.sender.sendMarkdown(ctx, c.Chat(), fmt.Sprintf("Got it, I'll reply in %s from now on.", lang))
}

func (b *Bot) handleMode(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	mode := strings.ToLower(strings.TrimSpace(c.Message().Payload))
	switch mode {
	case core.UserParent, core.UserKid, core.UserTeacher:
		b.session(c).SetUserType(mode)
		return b.sender.sendMarkdown(ctx, c.Chat(), fmt.Sprintf("Switched to %s mode.", mode))
	default:
		return b.sender.sendMarkdown(ctx, c.Chat(), "Usage: `/mode parent` or `/mode kid`")
	}
}

// sessionStore lazily creates one orchestrator per chat id.
type sessionStore struct {
	mu         sync.Mutex
	newSession SessionFactory
	sessions   map[int64]*chat.Orchestrator
}

func newSessionStore(newSession SessionFactory) *sessionStore {
	return &sessionStore{
		newSession: newSession,
		sessions:   map[int64]*chat.Orchestrator{},
	}
}

func (s *sessionStore) get(chatID int64, user *tele.User) *chat.Orchestrator {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o, ok := s.sessions[chatID]; ok {
		return o
	}

	profile := core.UserProfile{
		ID:   fmt.Sprintf("telegram-%d", user.ID),
		Name: strings.TrimSpace(user.FirstName + " " + user.LastName),
		Type: core.UserParent,
		Preferences: core.Preferences{
			Accent:   core.AccentIndian,
			Language: "english",
		},
	}
	o := s.newSession(fmt.Sprintf("telegram-%d", chatID), profile)
	s.sessions[chatID] = o
	return o
}
