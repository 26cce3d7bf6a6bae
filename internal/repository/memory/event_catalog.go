package memory

import (
	"context"
	"sync"

	"campusevents/internal/domain"
)

// EventCatalog is an in-memory catalog for DB-less runs and tests.
type EventCatalog struct {
	mu     sync.RWMutex
	events []*domain.Event
	nextID int64
}

// NewEventCatalog returns an empty in-memory EventCatalog.
func NewEventCatalog() *EventCatalog {
	return &EventCatalog{nextID: 1}
}

func (c *EventCatalog) List(ctx context.Context) ([]*domain.Event, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*domain.Event, len(c.events))
	copy(out, c.events)
	return out, nil
}

func (c *EventCatalog) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ev := range c.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (c *EventCatalog) Create(ctx context.Context, event *domain.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	event.ID = c.nextID
	c.nextID++
	c.events = append(c.events, event)
	return nil
}

func (c *EventCatalog) Update(ctx context.Context, event *domain.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ev := range c.events {
		if ev.ID == event.ID {
			c.events[i] = event
			return nil
		}
	}
	return domain.ErrNotFound
}

func (c *EventCatalog) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ev := range c.events {
		if ev.ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
