// Package httpapi exposes the model relay over HTTP. Clients post a fully
// assembled message list and receive the assistant reply; the server holds
// the upstream credentials so they never ship to clients.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/speakgenie/genie-support/internal/core"
	"github.com/speakgenie/genie-support/internal/providers/llm"
	"github.com/speakgenie/genie-support/pkg/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server is the relay endpoint. It implements srv.Service.
type Server struct {
	ai   core.AIProvider
	http *http.Server
}

func NewServer(port int, ai core.AIProvider) *Server {
	s := &Server{ai: ai}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/health", s.handleHealth)

	s.http = &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(port)),
		Handler:           s.recoverer(mux),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.http.Addr).Msg("relay server listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	log.FromCtx(ctx).Info().Msg("relay server shutting down")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Handler returns the root handler, recovery middleware included.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

type chatRequest struct {
	Messages []core.Message `json:"messages"`
}

type chatResponse struct {
	Content string `json:"content"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "Messages array is required")
		return
	}

	reply, err := s.ai.Chat(r.Context(), req.Messages)
	if err != nil {
		logger := log.FromCtx(r.Context())

		var upstream *llm.UpstreamError
		switch {
		case errors.As(err, &upstream):
			logger.Error().Int("status", upstream.Status).Msg("upstream rejected chat request")
			writeError(w, upstream.Status, "OpenAI API error: "+strconv.Itoa(upstream.Status))
		case errors.Is(err, llm.ErrNoAPIKey):
			logger.Error().Msg("chat request without configured api key")
			writeError(w, http.StatusInternalServerError, "OpenAI API key not configured")
		default:
			logger.Error().Err(err).Msg("chat request failed")
			writeError(w, http.StatusInternalServerError, "Failed to get response from AI")
		}
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Content: reply.Content})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recoverer turns handler panics into a generic 500 so one bad request can
// never take the relay down.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.FromCtx(r.Context()).Error().Any("panic", rec).Msg("handler panicked")
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
