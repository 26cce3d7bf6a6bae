package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"campusevents/internal/domain"
	"campusevents/internal/ledger"
)

type registrationService struct {
	catalog  domain.EventCatalog
	ledger   *ledger.Ledger
	store    domain.RegistrationStore
	notifier domain.RegistrationNotifier
	logger   *slog.Logger
}

// NewRegistrationService creates a RegistrationService over the given ledger.
// Every mutation persists the full ledger snapshot through the store before
// returning; the confirmation notification runs after Register returns and
// never affects its outcome.
func NewRegistrationService(
	catalog domain.EventCatalog,
	l *ledger.Ledger,
	store domain.RegistrationStore,
	notifier domain.RegistrationNotifier,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		catalog:  catalog,
		ledger:   l,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *registrationService) Register(ctx context.Context, eventID int64, userID string, profile domain.Profile) (*domain.Registration, bool, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.Email = strings.TrimSpace(strings.ToLower(profile.Email))
	profile.Role = strings.TrimSpace(profile.Role)
	profile.Department = strings.TrimSpace(profile.Department)
	if profile.Name == "" || profile.Email == "" {
		return nil, false, fmt.Errorf("%w: name and email are required", domain.ErrInvalidInput)
	}

	ev, err := s.catalog.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get event: %w", err)
	}

	reg, created := s.ledger.Register(eventID, userID, profile)
	if !created {
		return reg, false, nil
	}

	if err := s.persist(ctx); err != nil {
		return nil, false, err
	}

	// Fire-and-forget: a failed confirmation email is logged, never rolled
	// back into the registration.
	go func(ev domain.Event, reg domain.Registration) {
		nctx := context.WithoutCancel(ctx)
		if err := s.notifier.NotifyRegistered(nctx, &ev, &reg); err != nil {
			s.logger.Warn("registration confirmation failed",
				"event_id", ev.ID, "user_id", reg.UserID, "err", err)
		}
	}(*ev, *reg)

	return reg, true, nil
}

func (s *registrationService) Unregister(ctx context.Context, eventID int64, userID string) error {
	if removed := s.ledger.Unregister(eventID, userID); !removed {
		// Removing a missing registration mirrors idempotent register.
		return nil
	}
	return s.persist(ctx)
}

func (s *registrationService) CheckIn(ctx context.Context, eventID int64, userID string) (*domain.Registration, error) {
	reg, err := s.ledger.CheckIn(eventID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *registrationService) CheckOut(ctx context.Context, eventID int64, userID string) (*domain.Registration, error) {
	reg, err := s.ledger.CheckOut(eventID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *registrationService) Registrations(ctx context.Context, eventID int64) ([]*domain.Registration, error) {
	if _, err := s.catalog.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.ledger.RegistrationsFor(eventID), nil
}

func (s *registrationService) RegistrationsForUser(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	regs := s.ledger.RegistrationsForUser(userID)
	result := []*domain.RegistrationWithEvent{}

	eventsByID := make(map[int64]*domain.Event)
	for _, reg := range regs {
		ev, ok := eventsByID[reg.EventID]
		if !ok {
			var err error
			ev, err = s.catalog.GetByID(ctx, reg.EventID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					// Event deleted from the catalog but the registration
					// remains; skip this entry.
					continue
				}
				return nil, fmt.Errorf("get event for registration: %w", err)
			}
			eventsByID[reg.EventID] = ev
		}
		result = append(result, &domain.RegistrationWithEvent{Registration: reg, Event: ev})
	}
	return result, nil
}

// persist writes the full ledger snapshot as one logical unit. The in-memory
// ledger stays authoritative for this process even when the store fails.
func (s *registrationService) persist(ctx context.Context) error {
	if err := s.store.Save(ctx, s.ledger.Snapshot()); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}
