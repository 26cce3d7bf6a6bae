package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// AdminController serves the check-in desk and attendance reporting. All of
// its routes sit behind the admin bearer token.
type AdminController struct {
	Logger        *slog.Logger
	Registrations domain.RegistrationService
	Catalog       domain.CatalogService

	Now func() time.Time
}

func NewAdminController(logger *slog.Logger, regs domain.RegistrationService, catalog domain.CatalogService) *AdminController {
	return &AdminController{
		Logger:        logger,
		Registrations: regs,
		Catalog:       catalog,
		Now:           time.Now,
	}
}

// CheckInSuccessResponse is the success envelope for the check-in/check-out endpoints.
type CheckInSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// CheckIn godoc
// @Summary Check an attendee in
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param userID path string true "User ID"
// @Success 200 {object} controllers.CheckInSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/attendees/{userID}/checkin [post]
func (c *AdminController) CheckIn(w http.ResponseWriter, r *http.Request) {
	c.mutateCheckState(w, r, c.Registrations.CheckIn)
}

// CheckOut godoc
// @Summary Revert an attendee's check-in
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param userID path string true "User ID"
// @Success 200 {object} controllers.CheckInSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/attendees/{userID}/checkout [post]
func (c *AdminController) CheckOut(w http.ResponseWriter, r *http.Request) {
	c.mutateCheckState(w, r, c.Registrations.CheckOut)
}

func (c *AdminController) mutateCheckState(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, eventID int64, userID string) (*domain.Registration, error),
) {
	eventID, ok := parseEventID(w, r)
	if !ok {
		return
	}
	userID := r.PathValue("userID")
	if userID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing userID")
		return
	}

	reg, err := op(r.Context(), eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotRegistered) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no registration for this event and user")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// RosterSuccessResponse is the success envelope for GET /admin/events/{eventID}/registrations.
type RosterSuccessResponse struct {
	Data  []*domain.Registration `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// Roster godoc
// @Summary List an event's registrations in registration order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.RosterSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/registrations [get]
func (c *AdminController) Roster(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parseEventID(w, r)
	if !ok {
		return
	}

	regs, err := c.Registrations.Registrations(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// StatsSuccessResponse is the success envelope for GET /admin/events/{eventID}/stats.
type StatsSuccessResponse struct {
	Data  *domain.EventStats `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// Stats godoc
// @Summary Attendance summary for an event
// @Description Status, registered and checked-in counts, and unclamped capacity utilization. Utilization is null for unlimited-capacity events.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.StatsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID}/stats [get]
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	eventID, ok := parseEventID(w, r)
	if !ok {
		return
	}

	stats, err := c.Catalog.EventStats(r.Context(), eventID, c.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}
