// Package memory holds per-session conversation transcripts in process
// memory. Support sessions are deliberately ephemeral: nothing is written to
// disk and a restart clears every transcript.
package memory

import (
	"context"
	"sync"

	"github.com/speakgenie/genie-support/internal/core"
)

type HistoryRepo struct {
	mu       sync.RWMutex
	sessions map[string][]core.ChatMessage
}

func NewHistoryRepo() *HistoryRepo {
	return &HistoryRepo{
		sessions: make(map[string][]core.ChatMessage),
	}
}

func (r *HistoryRepo) Append(ctx context.Context, sessionID string, msg core.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = append(r.sessions[sessionID], msg)
	return nil
}

// Recent returns the last limit entries in chronological order. A limit of
// zero or less returns nothing.
func (r *HistoryRepo) Recent(ctx context.Context, sessionID string, limit int) ([]core.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.sessions[sessionID]
	if limit <= 0 || len(history) == 0 {
		return nil, nil
	}
	if limit > len(history) {
		limit = len(history)
	}

	out := make([]core.ChatMessage, limit)
	copy(out, history[len(history)-limit:])
	return out, nil
}

func (r *HistoryRepo) All(ctx context.Context, sessionID string) ([]core.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.sessions[sessionID]
	out := make([]core.ChatMessage, len(history))
	copy(out, history)
	return out, nil
}

func (r *HistoryRepo) Clear(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}
