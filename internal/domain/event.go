package domain

import (
	"context"
	"time"
)

// CapacityUnlimited is the capacity sentinel for events with no attendance limit.
const CapacityUnlimited = 0

// Event represents a campus event from the catalog. The catalog collaborator
// owns these records; the registration core only reads them.
// swagger:model Event
type Event struct {
	ID                   int64      `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Location             string     `json:"location"`
	DateStart            time.Time  `json:"date_start"`
	DateEnd              time.Time  `json:"date_end"`
	RegistrationRequired bool       `json:"registration_required"`
	RegistrationStart    *time.Time `json:"registration_start,omitempty"`
	RegistrationEnd      *time.Time `json:"registration_end,omitempty"`
	Capacity             int        `json:"capacity"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the catalog on create.
func NewEvent(title string, dateStart, dateEnd time.Time, capacity int, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:     title,
		DateStart: dateStart,
		DateEnd:   dateEnd,
		Capacity:  capacity,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Unlimited reports whether the event has no capacity limit.
func (e *Event) Unlimited() bool {
	return e.Capacity == CapacityUnlimited
}

// EventCatalog defines the interface for the event catalog collaborator.
// List returns events in catalog order. The mutating operations exist for the
// catalog owner's admin workflows; the registration core never calls them.
type EventCatalog interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int64) error
}

// EventStats is the admin attendance summary for a single event.
// swagger:model EventStats
type EventStats struct {
	EventID         int64    `json:"event_id"`
	Status          Status   `json:"status"`
	Capacity        int      `json:"capacity"`
	RegisteredCount int      `json:"registered_count"`
	CheckedInCount  int      `json:"checked_in_count"`
	Utilization     *float64 `json:"utilization"`
}

// CatalogService produces the enriched event views consumed by presentation
// and admin code. userID may be empty, in which case the per-user fields of
// the view are omitted.
type CatalogService interface {
	ListEvents(ctx context.Context, now time.Time, userID string) ([]*EventView, error)
	GetEvent(ctx context.Context, id int64, now time.Time, userID string) (*EventView, error)
	EventStats(ctx context.Context, id int64, now time.Time) (*EventStats, error)
}

// EventView is the enriched read-only projection of an event consumed by
// presentation code. Status and counts are recomputed on every call and must
// never be treated as a source of truth.
// swagger:model EventView
type EventView struct {
	*Event
	Status           Status   `json:"status"`
	RegisteredCount  int      `json:"registered_count"`
	CheckedInCount   int      `json:"checked_in_count"`
	Utilization      *float64 `json:"utilization"`
	UserIsRegistered *bool    `json:"user_is_registered,omitempty"`
	UserCheckedIn    *bool    `json:"user_checked_in,omitempty"`
}
