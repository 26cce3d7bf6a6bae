package domain

import "time"

// Status is the derived temporal phase of an event. It is never persisted;
// it is always recomputed from the event's dates and the current time.
type Status string

const (
	// StatusIncoming: the event is in the future and registration has not opened.
	StatusIncoming Status = "incoming"
	// StatusUpcoming: the event is in the future and registration is (or was) open.
	StatusUpcoming Status = "upcoming"
	// StatusOngoing: today falls within the event's date range, inclusive.
	StatusOngoing Status = "ongoing"
	// StatusCompleted: the event's end date has passed.
	StatusCompleted Status = "completed"
)

// StatusCalculator derives event statuses at day granularity in an explicit
// time zone. All date comparisons truncate to the start of day in Location,
// and DateEnd is inclusive through its end of day.
type StatusCalculator struct {
	Location *time.Location
}

// NewStatusCalculator returns a calculator for the given zone. A nil location
// defaults to UTC.
func NewStatusCalculator(loc *time.Location) *StatusCalculator {
	if loc == nil {
		loc = time.UTC
	}
	return &StatusCalculator{Location: loc}
}

// StatusOf derives the status of ev at the given instant. It is a total,
// side-effect-free function: well-formed events (DateEnd >= DateStart) are a
// caller precondition and are not re-validated here.
//
// An in-range day always resolves to ongoing, even when a registration window
// would otherwise suggest upcoming or incoming. For future events the
// registration window is consulted only when registration is required; a
// closed or absent window on such an event yields upcoming.
func (c *StatusCalculator) StatusOf(ev *Event, now time.Time) Status {
	today := c.dayOf(now)
	start := c.dayOf(ev.DateStart)
	end := c.dayOf(ev.DateEnd)

	if today.After(end) {
		return StatusCompleted
	}
	if !today.Before(start) {
		return StatusOngoing
	}

	if !ev.RegistrationRequired {
		return StatusIncoming
	}
	if ev.RegistrationStart != nil && ev.RegistrationEnd != nil {
		regStart := c.dayOf(*ev.RegistrationStart)
		if today.Before(regStart) {
			return StatusIncoming
		}
	}
	return StatusUpcoming
}

// dayOf truncates t to the start of its calendar day in the calculator's zone.
func (c *StatusCalculator) dayOf(t time.Time) time.Time {
	y, m, d := t.In(c.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.Location)
}
