package otp

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreVerifyIsSingleUse(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	code, err := s.Generate(ctx, "sched-1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}

	if err := s.Verify(ctx, "sched-1", code); err != nil {
		t.Fatalf("first verify should pass: %v", err)
	}
	if err := s.Verify(ctx, "sched-1", code); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second verify must fail with ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreWrongCode(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	code, err := s.Generate(ctx, "sched-1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	if err := s.Verify(ctx, "sched-1", wrong); !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}

	// mismatch does not consume the code
	if err := s.Verify(ctx, "sched-1", code); err != nil {
		t.Fatalf("correct code should still verify: %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }

	code, err := s.Generate(ctx, "sched-1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	s.now = func() time.Time { return now.Add(TTL + time.Second) }
	if err := s.Verify(ctx, "sched-1", code); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired code to be gone, got %v", err)
	}
}

func TestMemoryStoreUnknownSchedule(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Verify(context.Background(), "sched-unknown", "123456"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
