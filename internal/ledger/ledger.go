// Package ledger holds the authoritative in-memory collection of event
// registrations and the read-only aggregations derived from it.
package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"campusevents/internal/domain"
)

type key struct {
	eventID int64
	userID  string
}

// Ledger owns the set of live registrations. It keeps insertion order and
// guarantees at most one record per (event, user) pair by construction.
// Mutations are synchronous; the single-writer model means concurrent writers
// are last-write-wins, which is accepted.
type Ledger struct {
	mu    sync.RWMutex
	regs  []*domain.Registration
	index map[key]int

	now       func() time.Time
	newTicket func() string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source. Used by callers that need
// deterministic timestamps, primarily tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithTicketSource overrides ticket generation.
func WithTicketSource(gen func() string) Option {
	return func(l *Ledger) { l.newTicket = gen }
}

// New returns an empty ledger. By default tickets are random UUIDs and
// timestamps come from time.Now.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		index:     make(map[key]int),
		now:       time.Now,
		newTicket: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Register creates a registration for the pair, or returns the existing one
// untouched. created reports whether a new record was made. Registering twice
// never changes RegisteredAt or the ticket.
func (l *Ledger) Register(eventID int64, userID string, profile domain.Profile) (reg *domain.Registration, created bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := key{eventID, userID}
	if i, ok := l.index[k]; ok {
		return l.regs[i], false
	}

	r := &domain.Registration{
		EventID:      eventID,
		UserID:       userID,
		Name:         profile.Name,
		Email:        profile.Email,
		Role:         profile.Role,
		Department:   profile.Department,
		RegisteredAt: l.now(),
		Ticket:       l.newTicket(),
	}
	l.index[k] = len(l.regs)
	l.regs = append(l.regs, r)
	return r, true
}

// Unregister removes the pair's registration. Removing a registration that
// does not exist is a no-op; removed reports whether a record was deleted.
func (l *Ledger) Unregister(eventID int64, userID string) (removed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := key{eventID, userID}
	i, ok := l.index[k]
	if !ok {
		return false
	}
	l.regs = append(l.regs[:i], l.regs[i+1:]...)
	delete(l.index, k)
	for j := i; j < len(l.regs); j++ {
		l.index[key{l.regs[j].EventID, l.regs[j].UserID}] = j
	}
	return true
}

// CheckIn marks the pair's registration as checked in. It never creates a
// record; a missing registration is domain.ErrNotRegistered.
func (l *Ledger) CheckIn(eventID int64, userID string) (*domain.Registration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[key{eventID, userID}]
	if !ok {
		return nil, domain.ErrNotRegistered
	}
	r := l.regs[i]
	if !r.CheckedIn {
		t := l.now()
		r.CheckedIn = true
		r.CheckedInAt = &t
	}
	return r, nil
}

// CheckOut clears the pair's checked-in state. A missing registration is
// domain.ErrNotRegistered.
func (l *Ledger) CheckOut(eventID int64, userID string) (*domain.Registration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[key{eventID, userID}]
	if !ok {
		return nil, domain.ErrNotRegistered
	}
	r := l.regs[i]
	r.CheckedIn = false
	r.CheckedInAt = nil
	return r, nil
}

// IsRegistered reports whether a live registration exists for the pair.
func (l *Ledger) IsRegistered(eventID int64, userID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.index[key{eventID, userID}]
	return ok
}

// Get returns the pair's registration, if any.
func (l *Ledger) Get(eventID int64, userID string) (*domain.Registration, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.index[key{eventID, userID}]
	if !ok {
		return nil, false
	}
	return l.regs[i], true
}

// RegistrationsFor returns the event's registrations in insertion order.
func (l *Ledger) RegistrationsFor(eventID int64) []*domain.Registration {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []*domain.Registration{}
	for _, r := range l.regs {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out
}

// RegistrationsForUser returns the user's registrations in insertion order.
func (l *Ledger) RegistrationsForUser(userID string) []*domain.Registration {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []*domain.Registration{}
	for _, r := range l.regs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// Snapshot returns a flat ordered copy of every registration, suitable for
// handing to a RegistrationStore.
func (l *Ledger) Snapshot() []domain.Registration {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Registration, len(l.regs))
	for i, r := range l.regs {
		out[i] = *r
	}
	return out
}

// Restore replaces the ledger's contents with the given flat list, preserving
// list order. Records that repeat an already-seen (event, user) pair are
// dropped, and a record claiming checked-in without a timestamp (or the
// reverse) is normalized to checked-out, so a corrupt store can never
// introduce invariant violations. It returns the number of records dropped.
func (l *Ledger) Restore(regs []domain.Registration) (dropped int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.regs = l.regs[:0]
	l.index = make(map[key]int, len(regs))
	for i := range regs {
		r := regs[i]
		k := key{r.EventID, r.UserID}
		if _, ok := l.index[k]; ok {
			dropped++
			continue
		}
		if r.CheckedIn != (r.CheckedInAt != nil) {
			r.CheckedIn = false
			r.CheckedInAt = nil
		}
		l.index[k] = len(l.regs)
		l.regs = append(l.regs, &r)
	}
	return dropped
}
