package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

func adminRequest(method, target, eventID, userID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.SetPathValue("eventID", eventID)
	if userID != "" {
		req.SetPathValue("userID", userID)
	}
	return req
}

func TestAdminController_CheckIn(t *testing.T) {
	checkedInAt := time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)
	reg := sampleRegistration()
	reg.CheckedIn = true
	reg.CheckedInAt = &checkedInAt

	svc := &mockRegistrationService{checkInReg: reg}
	ctrl := NewAdminController(discardLogger(), svc, &mockCatalogService{})

	w := httptest.NewRecorder()
	ctrl.CheckIn(w, adminRequest(http.MethodPost, "/admin/events/7/attendees/u1/checkin", "7", "u1"))

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

func TestAdminController_CheckIn_NotRegistered(t *testing.T) {
	svc := &mockRegistrationService{checkInErr: domain.ErrNotRegistered}
	ctrl := NewAdminController(discardLogger(), svc, &mockCatalogService{})

	w := httptest.NewRecorder()
	ctrl.CheckIn(w, adminRequest(http.MethodPost, "/admin/events/7/attendees/ghost/checkin", "7", "ghost"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestAdminController_CheckOut_MissingUserID(t *testing.T) {
	ctrl := NewAdminController(discardLogger(), &mockRegistrationService{}, &mockCatalogService{})

	w := httptest.NewRecorder()
	ctrl.CheckOut(w, adminRequest(http.MethodPost, "/admin/events/7/attendees//checkout", "7", ""))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestAdminController_Roster(t *testing.T) {
	svc := &mockRegistrationService{reg: sampleRegistration()}
	ctrl := NewAdminController(discardLogger(), svc, &mockCatalogService{})

	w := httptest.NewRecorder()
	ctrl.Roster(w, adminRequest(http.MethodGet, "/admin/events/7/registrations", "7", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestAdminController_Roster_EventNotFound(t *testing.T) {
	svc := &mockRegistrationService{err: domain.ErrNotFound}
	ctrl := NewAdminController(discardLogger(), svc, &mockCatalogService{})

	w := httptest.NewRecorder()
	ctrl.Roster(w, adminRequest(http.MethodGet, "/admin/events/99/registrations", "99", ""))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestAdminController_Stats(t *testing.T) {
	u := 1.2
	svc := &mockCatalogService{
		stats: &domain.EventStats{
			EventID:         7,
			Status:          domain.StatusOngoing,
			Capacity:        50,
			RegisteredCount: 60,
			CheckedInCount:  12,
			Utilization:     &u,
		},
	}
	ctrl := NewAdminController(discardLogger(), &mockRegistrationService{}, svc)

	w := httptest.NewRecorder()
	ctrl.Stats(w, adminRequest(http.MethodGet, "/admin/events/7/stats", "7", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp struct {
		Data *domain.EventStats `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data == nil || resp.Data.Utilization == nil {
		t.Fatal("expected stats with utilization")
	}
	if *resp.Data.Utilization != 1.2 {
		t.Fatalf("expected unclamped utilization 1.2, got %v", *resp.Data.Utilization)
	}
}
