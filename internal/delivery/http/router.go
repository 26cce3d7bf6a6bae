// Package http wires controllers and middleware into the application router.
package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes. Admin
// routes are wrapped with bearer-token auth.
func NewRouter(
	eventController *controllers.EventController,
	registrationController *controllers.RegistrationController,
	adminController *controllers.AdminController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Public catalog
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)

	// Attendee registration
	mux.HandleFunc("POST /events/{eventID}/registrations", registrationController.Register)
	mux.HandleFunc("DELETE /events/{eventID}/registrations", registrationController.Unregister)
	mux.HandleFunc("GET /users/{userID}/registrations", registrationController.ListUserRegistrations)

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Admin check-in desk and reporting
	mux.HandleFunc("POST /admin/events/{eventID}/attendees/{userID}/checkin", requireAuth(adminController.CheckIn))
	mux.HandleFunc("POST /admin/events/{eventID}/attendees/{userID}/checkout", requireAuth(adminController.CheckOut))
	mux.HandleFunc("GET /admin/events/{eventID}/registrations", requireAuth(adminController.Roster))
	mux.HandleFunc("GET /admin/events/{eventID}/stats", requireAuth(adminController.Stats))

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
