package core

import "context"

// HistoryRepository keeps per-session conversation transcripts. Sessions are
// in-memory only; the transcript lives exactly as long as the process.
type HistoryRepository interface {
	Append(ctx context.Context, sessionID string, msg ChatMessage) error
	// Recent returns the last limit entries in chronological order.
	Recent(ctx context.Context, sessionID string, limit int) ([]ChatMessage, error)
	All(ctx context.Context, sessionID string) ([]ChatMessage, error)
	Clear(ctx context.Context, sessionID string) error
}
