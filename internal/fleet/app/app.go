package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/agi-health/medfleet/internal/fleet/http"
	"github.com/agi-health/medfleet/internal/fleet/obs"
	"github.com/agi-health/medfleet/internal/fleet/service"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/agi-health/medfleet/internal/fleet/store/drivers/sqlite"
	"github.com/agi-health/medfleet/pkg/cryptox"
	"github.com/agi-health/medfleet/pkg/jwtx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the fleet service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         store.Store
	keyManager *jwtx.KeyManager

	// Services
	auditRecorder        *service.AuditRecorder
	authService          *service.AuthService
	organizationsService *service.OrganizationsService
	rolesService         *service.RolesService
	modulesService       *service.ModulesService
	usersService         *service.UsersService
	equipmentService     *service.EquipmentService
	subscriptionsService *service.SubscriptionsService
	reportsService       *service.ReportsService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized. The database
// is migrated and seeded before the HTTP surface is wired.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "medfleet",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.AgentAPIKey == "" {
		return nil, errors.New("FLEET_AGENT_API_KEY must be set")
	}
	if cfg.AdminEmail != "" && cfg.AdminPassword == "" {
		return nil, errors.New("FLEET_ADMIN_PASSWORD must be set when FLEET_ADMIN_EMAIL is")
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keyManager, err := jwtx.NewEphemeralKeyManager("medfleet-" + BuildVersion)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize signing keys: %w", err)
	}
	app.keyManager = keyManager

	app.initServices()

	seeder := &service.SeedService{
		Store:         app.db,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		AdminName:     cfg.AdminName,
		RootOrgName:   cfg.RootOrgName,
	}
	if err := seeder.Seed(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed reference data: %w", err)
	}

	obs.Init()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.auditRecorder.Start()

	app.logger.Info("fleet service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down fleet service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the audit recorder after the server so late requests still get
	// their entries drained.
	app.auditRecorder.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("fleet service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.auditRecorder = service.NewAuditRecorder(app.db, app.logger, app.cfg.AuditBuffer)

	app.authService = &service.AuthService{
		Store:      app.db,
		KeyManager: app.keyManager,
		Audit:      app.auditRecorder,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.AccessTokenTTL,
	}
	app.organizationsService = &service.OrganizationsService{Store: app.db, Audit: app.auditRecorder}
	app.rolesService = &service.RolesService{Store: app.db, Audit: app.auditRecorder}
	app.modulesService = &service.ModulesService{Store: app.db, Audit: app.auditRecorder}
	app.usersService = &service.UsersService{Store: app.db, Audit: app.auditRecorder}
	app.equipmentService = &service.EquipmentService{Store: app.db, Audit: app.auditRecorder}
	app.subscriptionsService = &service.SubscriptionsService{Store: app.db, Audit: app.auditRecorder}
	app.reportsService = &service.ReportsService{Store: app.db}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier(app.cfg.Issuer),
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.AgentAPIKey,
		app.cfg.RequestTimeout,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.OrganizationsService = app.organizationsService
	router.RolesService = app.rolesService
	router.ModulesService = app.modulesService
	router.UsersService = app.usersService
	router.EquipmentService = app.equipmentService
	router.SubscriptionsService = app.subscriptionsService
	router.ReportsService = app.reportsService
	router.MetricsHandler = obs.Handler()
	router.Use(obs.Instrument)
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
