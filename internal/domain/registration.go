package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for registration and catalog operations.
var (
	ErrNotFound      = errors.New("not found")
	ErrNotRegistered = errors.New("not registered for event")
	ErrInvalidInput  = errors.New("invalid input")
)

// Registration is one attendee's live registration for an event. At most one
// record exists per (EventID, UserID) pair; the ledger enforces this by
// construction.
// swagger:model Registration
type Registration struct {
	EventID      int64      `json:"event_id"`
	UserID       string     `json:"user_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Department   string     `json:"department,omitempty"`
	RegisteredAt time.Time  `json:"registered_at"`
	Ticket       string     `json:"ticket"`
	CheckedIn    bool       `json:"checked_in"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
}

// Profile carries the attendee details supplied at registration time.
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
}

// RegistrationStore persists the ledger as a flat ordered list of
// registrations. Save replaces the whole stored list in one logical unit
// (read-modify-write per mutation); Load returns the list in stored order and
// must drop records that violate the (event, user) uniqueness invariant
// rather than surfacing duplicates.
type RegistrationStore interface {
	Load(ctx context.Context) ([]Registration, error)
	Save(ctx context.Context, regs []Registration) error
}

// RegistrationNotifier is the notification collaborator's port. It receives
// the post-registration event (event, user, ticket) after a new registration
// is created; the core fires it and does not wait on or depend on the outcome.
type RegistrationNotifier interface {
	NotifyRegistered(ctx context.Context, ev *Event, reg *Registration) error
}

// RegistrationService defines the attendee- and admin-facing registration
// operations exposed to delivery code.
type RegistrationService interface {
	// Register registers the user for the event. Idempotent: created is true
	// when a new registration was made, false when the existing record was
	// returned untouched.
	Register(ctx context.Context, eventID int64, userID string, profile Profile) (reg *Registration, created bool, err error)
	// Unregister removes the user's registration. Removing a registration
	// that does not exist is a no-op success.
	Unregister(ctx context.Context, eventID int64, userID string) error
	// CheckIn marks the registration as checked in. Returns ErrNotRegistered
	// when no registration exists for the pair.
	CheckIn(ctx context.Context, eventID int64, userID string) (*Registration, error)
	// CheckOut clears the checked-in state. Returns ErrNotRegistered when no
	// registration exists for the pair.
	CheckOut(ctx context.Context, eventID int64, userID string) (*Registration, error)
	// Registrations returns the event's registrations in insertion order.
	Registrations(ctx context.Context, eventID int64) ([]*Registration, error)
	// RegistrationsForUser returns the user's registrations, each paired with
	// its catalog event.
	RegistrationsForUser(ctx context.Context, userID string) ([]*RegistrationWithEvent, error)
}

// RegistrationWithEvent bundles a registration with its catalog event.
type RegistrationWithEvent struct {
	Registration *Registration `json:"registration"`
	Event        *Event        `json:"event"`
}
