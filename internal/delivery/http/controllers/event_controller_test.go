package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

type mockCatalogService struct {
	views []*domain.EventView
	view  *domain.EventView
	stats *domain.EventStats
	err   error

	gotUserID string
	gotNow    time.Time
}

func (m *mockCatalogService) ListEvents(ctx context.Context, now time.Time, userID string) ([]*domain.EventView, error) {
	m.gotNow = now
	m.gotUserID = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.views, nil
}

func (m *mockCatalogService) GetEvent(ctx context.Context, id int64, now time.Time, userID string) (*domain.EventView, error) {
	m.gotNow = now
	m.gotUserID = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.view, nil
}

func (m *mockCatalogService) EventStats(ctx context.Context, id int64, now time.Time) (*domain.EventStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

func TestEventController_ListEvents(t *testing.T) {
	svc := &mockCatalogService{
		views: []*domain.EventView{
			{Event: &domain.Event{ID: 1, Title: "Orientation Day"}, Status: domain.StatusUpcoming},
		},
	}
	ctrl := NewEventController(discardLogger(), svc)
	pinned := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	ctrl.Now = func() time.Time { return pinned }

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()
	ctrl.ListEvents(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if svc.gotUserID != "u1" {
		t.Fatalf("expected user ID to be forwarded, got %q", svc.gotUserID)
	}
	if !svc.gotNow.Equal(pinned) {
		t.Fatalf("expected injected clock to be used, got %v", svc.gotNow)
	}
}

func TestEventController_GetEvent(t *testing.T) {
	svc := &mockCatalogService{
		view: &domain.EventView{Event: &domain.Event{ID: 7, Title: "Career Fair"}, Status: domain.StatusOngoing},
	}
	ctrl := NewEventController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/7", nil)
	req.SetPathValue("eventID", "7")
	w := httptest.NewRecorder()
	ctrl.GetEvent(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
}

func TestEventController_GetEvent_NotFound(t *testing.T) {
	ctrl := NewEventController(discardLogger(), &mockCatalogService{err: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/events/99", nil)
	req.SetPathValue("eventID", "99")
	w := httptest.NewRecorder()
	ctrl.GetEvent(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestEventController_GetEvent_BadID(t *testing.T) {
	ctrl := NewEventController(discardLogger(), &mockCatalogService{})

	req := httptest.NewRequest(http.MethodGet, "/events/-3", nil)
	req.SetPathValue("eventID", "-3")
	w := httptest.NewRecorder()
	ctrl.GetEvent(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestEventController_ListEvents_ServiceError(t *testing.T) {
	ctrl := NewEventController(discardLogger(), &mockCatalogService{err: errors.New("catalog down")})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	w := httptest.NewRecorder()
	ctrl.ListEvents(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
