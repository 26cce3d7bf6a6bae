package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// EventController serves the public catalog views.
type EventController struct {
	Logger  *slog.Logger
	Service domain.CatalogService

	// Now is the clock injected into status derivation. Defaults to time.Now.
	Now func() time.Time
}

func NewEventController(logger *slog.Logger, svc domain.CatalogService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

// parseEventID reads the eventID path value. On failure it writes a 400 and
// returns false.
func parseEventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("eventID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid eventID")
		return 0, false
	}
	return id, true
}

// ListEventsSuccessResponse is the success envelope for GET /events.
type ListEventsSuccessResponse struct {
	Data  []*domain.EventView `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListEvents godoc
// @Summary List events with derived status and attendance counts
// @Description Returns every catalog event enriched with its temporal status, registered/checked-in counts, and capacity utilization. When the X-User-ID header is present, each view also carries the user's registration flags.
// @Tags events
// @Produce json
// @Param X-User-ID header string false "Attendee identity for per-user view fields"
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	views, err := c.Service.ListEvents(r.Context(), c.Now(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, views)
}

// GetEventSuccessResponse is the success envelope for GET /events/{eventID}.
type GetEventSuccessResponse struct {
	Data  *domain.EventView `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEvent godoc
// @Summary Get a single enriched event
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Param X-User-ID header string false "Attendee identity for per-user view fields"
// @Success 200 {object} controllers.GetEventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseEventID(w, r)
	if !ok {
		return
	}
	userID := r.Header.Get("X-User-ID")

	view, err := c.Service.GetEvent(r.Context(), id, c.Now(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}
