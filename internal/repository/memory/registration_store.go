// Package memory provides in-process adapter implementations used when the
// server runs without a database and as fixtures in tests.
package memory

import (
	"context"
	"sync"

	"campusevents/internal/domain"
)

// RegistrationStore keeps the persisted ledger snapshot in memory.
type RegistrationStore struct {
	mu   sync.Mutex
	regs []domain.Registration
}

// NewRegistrationStore returns an empty in-memory RegistrationStore.
func NewRegistrationStore() *RegistrationStore {
	return &RegistrationStore{}
}

// Load returns a copy of the last saved snapshot in saved order.
func (s *RegistrationStore) Load(ctx context.Context) ([]domain.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Registration, len(s.regs))
	copy(out, s.regs)
	return out, nil
}

// Save replaces the stored snapshot.
func (s *RegistrationStore) Save(ctx context.Context, regs []domain.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regs = make([]domain.Registration, len(regs))
	copy(s.regs, regs)
	return nil
}
