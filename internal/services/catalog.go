package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
	"campusevents/internal/ledger"
)

type catalogService struct {
	catalog    domain.EventCatalog
	calculator *domain.StatusCalculator
	ledger     *ledger.Ledger
	aggregator *ledger.Aggregator
}

// NewCatalogService creates a CatalogService composing the event catalog,
// the status calculator, and the registration ledger. Views are recomputed
// on every call; nothing here caches status or counts.
func NewCatalogService(
	catalog domain.EventCatalog,
	calculator *domain.StatusCalculator,
	l *ledger.Ledger,
) domain.CatalogService {
	return &catalogService{
		catalog:    catalog,
		calculator: calculator,
		ledger:     l,
		aggregator: ledger.NewAggregator(l),
	}
}

func (s *catalogService) ListEvents(ctx context.Context, now time.Time, userID string) ([]*domain.EventView, error) {
	events, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	views := make([]*domain.EventView, 0, len(events))
	for _, ev := range events {
		views = append(views, s.view(ev, now, userID))
	}
	return views, nil
}

func (s *catalogService) GetEvent(ctx context.Context, id int64, now time.Time, userID string) (*domain.EventView, error) {
	ev, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.view(ev, now, userID), nil
}

func (s *catalogService) EventStats(ctx context.Context, id int64, now time.Time) (*domain.EventStats, error) {
	ev, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &domain.EventStats{
		EventID:         ev.ID,
		Status:          s.calculator.StatusOf(ev, now),
		Capacity:        ev.Capacity,
		RegisteredCount: s.aggregator.RegisteredCount(ev.ID),
		CheckedInCount:  s.aggregator.CheckedInCount(ev.ID),
		Utilization:     s.aggregator.Utilization(ev.ID, ev.Capacity),
	}, nil
}

func (s *catalogService) view(ev *domain.Event, now time.Time, userID string) *domain.EventView {
	v := &domain.EventView{
		Event:           ev,
		Status:          s.calculator.StatusOf(ev, now),
		RegisteredCount: s.aggregator.RegisteredCount(ev.ID),
		CheckedInCount:  s.aggregator.CheckedInCount(ev.ID),
		Utilization:     s.aggregator.Utilization(ev.ID, ev.Capacity),
	}
	if userID != "" {
		registered := false
		checkedIn := false
		if reg, ok := s.ledger.Get(ev.ID, userID); ok {
			registered = true
			checkedIn = reg.CheckedIn
		}
		v.UserIsRegistered = &registered
		v.UserCheckedIn = &checkedIn
	}
	return v
}
