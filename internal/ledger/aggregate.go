package ledger

import "campusevents/internal/domain"

// Aggregator derives attendance counts from a ledger. Every query recomputes
// from the live records, so results can never go stale against the ledger.
type Aggregator struct {
	ledger *Ledger
}

// NewAggregator returns an Aggregator over the given ledger.
func NewAggregator(l *Ledger) *Aggregator {
	return &Aggregator{ledger: l}
}

// RegisteredCount returns the number of live registrations for the event.
func (a *Aggregator) RegisteredCount(eventID int64) int {
	a.ledger.mu.RLock()
	defer a.ledger.mu.RUnlock()

	n := 0
	for _, r := range a.ledger.regs {
		if r.EventID == eventID {
			n++
		}
	}
	return n
}

// CheckedInCount returns the number of checked-in registrations for the
// event. It is bounded above by RegisteredCount for the same event.
func (a *Aggregator) CheckedInCount(eventID int64) int {
	a.ledger.mu.RLock()
	defer a.ledger.mu.RUnlock()

	n := 0
	for _, r := range a.ledger.regs {
		if r.EventID == eventID && r.CheckedIn {
			n++
		}
	}
	return n
}

// Utilization returns registered count over capacity, unclamped so callers
// can tell over-capacity from at-capacity; displays clamp to 1.0 themselves.
// It returns nil for unlimited-capacity events.
func (a *Aggregator) Utilization(eventID int64, capacity int) *float64 {
	if capacity == domain.CapacityUnlimited {
		return nil
	}
	u := float64(a.RegisteredCount(eventID)) / float64(capacity)
	return &u
}
