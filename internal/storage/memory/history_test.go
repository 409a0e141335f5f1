package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/speakgenie/genie-support/internal/core"
)

func TestHistoryRepo_AppendAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepo()

	for i := 0; i < 8; i++ {
		msg := core.ChatMessage{
			ID:      fmt.Sprintf("%d", i),
			Content: fmt.Sprintf("message %d", i),
			Sender:  core.RoleUser,
		}
		if err := repo.Append(ctx, "s1", msg); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	recent, err := repo.Recent(ctx, "s1", 5)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(recent))
	}
	// Chronological order, last 5.
	for i, msg := range recent {
		if want := fmt.Sprintf("%d", i+3); msg.ID != want {
			t.Errorf("entry %d: expected id %s, got %s", i, want, msg.ID)
		}
	}
}

func TestHistoryRepo_RecentShorterThanLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepo()

	_ = repo.Append(ctx, "s1", core.ChatMessage{ID: "1"})
	_ = repo.Append(ctx, "s1", core.ChatMessage{ID: "2"})

	recent, err := repo.Recent(ctx, "s1", 5)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 entries, got %d", len(recent))
	}
}

func TestHistoryRepo_SessionsIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepo()

	_ = repo.Append(ctx, "a", core.ChatMessage{ID: "1"})
	_ = repo.Append(ctx, "b", core.ChatMessage{ID: "2"})

	a, _ := repo.All(ctx, "a")
	b, _ := repo.All(ctx, "b")
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("expected 1 entry each, got %d and %d", len(a), len(b))
	}
	if a[0].ID == b[0].ID {
		t.Error("sessions must be isolated")
	}
}

func TestHistoryRepo_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepo()

	_ = repo.Append(ctx, "s1", core.ChatMessage{ID: "1"})
	if err := repo.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	all, _ := repo.All(ctx, "s1")
	if len(all) != 0 {
		t.Errorf("expected empty history after clear, got %d", len(all))
	}
}

func TestHistoryRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewHistoryRepo()

	_ = repo.Append(ctx, "s1", core.ChatMessage{ID: "1", Content: "original"})

	all, _ := repo.All(ctx, "s1")
	all[0].Content = "mutated"

	again, _ := repo.All(ctx, "s1")
	if again[0].Content != "original" {
		t.Error("repository must not expose internal state")
	}
}
