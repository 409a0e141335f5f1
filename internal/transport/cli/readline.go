// Package cli provides an interactive terminal session with the support
// agent, mainly for local testing of prompts and knowledge retrieval.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/speakgenie/genie-support/internal/config"
	"github.com/speakgenie/genie-support/internal/core"
	"github.com/speakgenie/genie-support/internal/service/chat"
	"github.com/speakgenie/genie-support/pkg/log"
)

type ReadLine struct {
	cfg     *config.AppConfig
	session *chat.Orchestrator
	rl      *readline.Instance
}

func NewReadLine(session *chat.Orchestrator, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:     cfg,
		session: session,
		rl:      rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("chat started. Type 'exit' to quit, '/help' for commands.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			r.handleCommand(ctx, line)
			continue
		}

		reply, err := r.session.SendMessage(ctx, line, core.InputText)
		if err != nil {
			logger.Error().Err(err).Msg("chat turn failed")
			fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(r.rl.Stdout(), "%s\n", reply.Content)
	}
}

func (r *ReadLine) handleCommand(ctx context.Context, line string) {
	logger := log.FromCtx(ctx)
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.ToLower(strings.TrimSpace(arg))

	switch cmd {
	case "/escalate":
		msg, err := r.session.EscalateToHuman(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("escalation failed")
			return
		}
		fmt.Fprintf(r.rl.Stdout(), "%s\n", msg.Content)

	case "/clear":
		if err := r.session.ClearChat(ctx); err != nil {
			logger.Error().Err(err).Msg("clear failed")
			return
		}
		fmt.Fprintln(r.rl.Stdout(), "Chat cleared.")

	case "/lang":
		if arg == "" {
			fmt.Fprintln(r.rl.Stdout(), "Usage: /lang hindi (or english, hinglish, tamil, ...)")
			return
		}
		r.session.SetLanguage(arg)
		fmt.Fprintf(r.rl.Stdout(), "Language set to %s.\n", arg)

	case "/mode":
		switch arg {
		case core.UserParent, core.UserKid, core.UserTeacher:
			r.session.SetUserType(arg)
			fmt.Fprintf(r.rl.Stdout(), "Mode set to %s.\n", arg)
		default:
			fmt.Fprintln(r.rl.Stdout(), "Usage: /mode parent|kid")
		}

	case "/voice":
		switch arg {
		case "on":
			r.session.SetVoiceEnabled(true)
			fmt.Fprintln(r.rl.Stdout(), "Voice replies enabled.")
		case "off":
			r.session.SetVoiceEnabled(false)
			fmt.Fprintln(r.rl.Stdout(), "Voice replies disabled.")
		default:
			fmt.Fprintln(r.rl.Stdout(), "Usage: /voice on|off")
		}

	case "/help":
		fmt.Fprintln(r.rl.Stdout(), "Commands: /escalate, /clear, /lang <language>, /mode parent|kid, /voice on|off, exit")

	default:
		fmt.Fprintf(r.rl.Stdout(), "Unknown command %s. Try /help.\n", cmd)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
