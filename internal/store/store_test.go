package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndRecentTurns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, turn := range []struct{ assistant, msg, reply string }{
		{"jobs", "find go jobs", "here are some jobs"},
		{"cards", "check my points", "you have 7,250 points"},
		{"jobs", "set a reminder", "reminder set"},
	} {
		if err := s.SaveTurn(ctx, turn.assistant, turn.msg, turn.reply); err != nil {
			t.Fatalf("SaveTurn error: %v", err)
		}
	}

	turns, err := s.RecentTurns(ctx, "jobs", 10)
	if err != nil {
		t.Fatalf("RecentTurns error: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want 2", len(turns))
	}
	// Newest first.
	if turns[0].UserMessage != "set a reminder" || turns[1].UserMessage != "find go jobs" {
		t.Errorf("unexpected order: %+v", turns)
	}
	if turns[0].Assistant != "jobs" {
		t.Errorf("assistant = %q", turns[0].Assistant)
	}
	if turns[0].CreatedAt.IsZero() {
		t.Error("created_at not recorded")
	}
}

func TestRecentTurns_Limit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for range 5 {
		if err := s.SaveTurn(ctx, "jobs", "m", "r"); err != nil {
			t.Fatalf("SaveTurn error: %v", err)
		}
	}

	turns, err := s.RecentTurns(ctx, "jobs", 3)
	if err != nil {
		t.Fatalf("RecentTurns error: %v", err)
	}
	if len(turns) != 3 {
		t.Errorf("got %d turns, want 3", len(turns))
	}
}

func TestRecentTurns_EmptyAssistant(t *testing.T) {
	s := openTestStore(t)

	turns, err := s.RecentTurns(context.Background(), "nobody", 10)
	if err != nil {
		t.Fatalf("RecentTurns error: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("got %d turns, want 0", len(turns))
	}
}
