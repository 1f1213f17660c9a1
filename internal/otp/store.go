package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// TTL bounds how long a boarding code stays valid.
const TTL = 5 * time.Minute

var (
	ErrNotFound = errors.New("otp: no code issued")
	ErrMismatch = errors.New("otp: code mismatch")
)

// Store issues and verifies single-use boarding codes keyed by schedule.
type Store interface {
	Generate(ctx context.Context, scheduleID string) (string, error)
	Verify(ctx context.Context, scheduleID, code string) error
}

// NewCode produces a 6-digit numeric code.
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// MemoryStore keeps codes in-process. Used in tests and single-node setups.
type MemoryStore struct {
	mu    sync.Mutex
	codes map[string]memoryEntry
	now   func() time.Time
}

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{codes: map[string]memoryEntry{}, now: time.Now}
}

func (s *MemoryStore) Generate(_ context.Context, scheduleID string) (string, error) {
	code, err := NewCode()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[scheduleID] = memoryEntry{code: code, expiresAt: s.now().Add(TTL)}
	return code, nil
}

func (s *MemoryStore) Verify(_ context.Context, scheduleID, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.codes[scheduleID]
	if !ok || s.now().After(entry.expiresAt) {
		delete(s.codes, scheduleID)
		return ErrNotFound
	}
	if entry.code != code {
		return ErrMismatch
	}
	// single use
	delete(s.codes, scheduleID)
	return nil
}
