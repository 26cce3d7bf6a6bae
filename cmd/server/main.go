// cmd/server is the application entry point: it loads config, wires the
// catalog, ledger, services, and controllers, and serves HTTP.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"campusevents/config"
	_ "campusevents/docs"
	"campusevents/internal/adapters/auth"
	"campusevents/internal/adapters/email"
	httpdelivery "campusevents/internal/delivery/http"
	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
	"campusevents/internal/ledger"
	"campusevents/internal/repository/memory"
	"campusevents/internal/repository/postgres"
	"campusevents/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	loc, err := time.LoadLocation(cfg.EventTimezone)
	if err != nil {
		logger.Error("invalid EVENT_TIMEZONE", "zone", cfg.EventTimezone, "err", err)
		os.Exit(1)
	}

	// Storage: postgres when configured, in-memory otherwise.
	var catalog domain.EventCatalog
	var store domain.RegistrationStore
	if cfg.DBUrl != "" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("ping database", "err", err)
			os.Exit(1)
		}
		catalog = postgres.NewEventCatalog(db)
		store = postgres.NewRegistrationStore(db)
		logger.Info("connected to postgres")
	} else {
		catalog = seedCatalog()
		store = memory.NewRegistrationStore()
		logger.Warn("DATABASE_URL not set; running with in-memory storage")
	}

	// Rebuild the ledger from the persisted snapshot.
	l := ledger.New()
	snapshot, err := store.Load(context.Background())
	if err != nil {
		logger.Error("load registrations", "err", err)
		os.Exit(1)
	}
	if dropped := l.Restore(snapshot); dropped > 0 {
		logger.Warn("dropped invalid persisted registrations", "count", dropped)
	}
	logger.Info("ledger restored", "registrations", len(snapshot))

	// Email
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	// Services
	calculator := domain.NewStatusCalculator(loc)
	catalogSvc := services.NewCatalogService(catalog, calculator, l)
	registrationSvc := services.NewRegistrationService(catalog, l, store, services.NewEmailNotifier(emailSvc), logger)
	authSvc := services.NewAuthService(
		cfg.AdminEmail, cfg.AdminPasswordHash, cfg.AdminPasswordSalt,
		auth.NewBcryptHasher(10), auth.NewJWTIssuer(cfg.JWTSecret),
	)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	// Controllers and router
	mux := httpdelivery.NewRouter(
		controllers.NewEventController(logger, catalogSvc),
		controllers.NewRegistrationController(logger, registrationSvc),
		controllers.NewAdminController(logger, registrationSvc, catalogSvc),
		controllers.NewAuthController(logger, authSvc),
		verifier,
	)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "timezone", cfg.EventTimezone)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("server stopped")
}

// seedCatalog returns an in-memory catalog with a few demo events so the
// DB-less development mode has something to browse.
func seedCatalog() domain.EventCatalog {
	catalog := memory.NewEventCatalog()
	now := time.Now()
	in := func(days int) time.Time { return now.AddDate(0, 0, days) }
	windowStart := in(1)
	windowEnd := in(13)

	events := []*domain.Event{
		{
			Title:     "Campus Open House",
			Location:  "Main Quad",
			DateStart: in(7),
			DateEnd:   in(7),
			Capacity:  domain.CapacityUnlimited,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			Title:                "Spring Career Fair",
			Location:             "Recreation Center",
			DateStart:            in(14),
			DateEnd:              in(15),
			RegistrationRequired: true,
			RegistrationStart:    &windowStart,
			RegistrationEnd:      &windowEnd,
			Capacity:             250,
			CreatedAt:            now,
			UpdatedAt:            now,
		},
	}
	for _, ev := range events {
		_ = catalog.Create(context.Background(), ev)
	}
	return catalog
}
