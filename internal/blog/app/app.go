package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/inkwelldev/inkwell/internal/blog/http"
	"github.com/inkwelldev/inkwell/internal/blog/service"
	"github.com/inkwelldev/inkwell/internal/blog/store"
	"github.com/inkwelldev/inkwell/internal/blog/store/drivers/sqlite"
	"github.com/inkwelldev/inkwell/pkg/cryptox"
	"github.com/inkwelldev/inkwell/pkg/jwtx"
	"github.com/inkwelldev/inkwell/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the blog service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	tokens *jwtx.Tokens
	hasher cryptox.PasswordHasher

	authService *service.AuthService
	userService *service.UserService
	postService *service.PostService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "blog-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	tokens, err := jwtx.New(cfg.JWTSecret, cfg.Issuer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	app.tokens = tokens
	app.hasher = cryptox.NewPasswordHasher(cfg.BcryptCost)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if err := app.seedAdmin(); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	app.initHTTP()

	return app, nil
}

// seedAdmin creates the configured admin account on a fresh database. It is
// skipped entirely unless all three admin settings are present.
func (app *Application) seedAdmin() error {
	if app.cfg.AdminUsername == "" || app.cfg.AdminEmail == "" || app.cfg.AdminPassword == "" {
		return nil
	}

	bootstrap := &service.BootstrapService{Store: app.db, Hasher: app.hasher}
	admin, created, err := bootstrap.SeedAdmin(
		context.Background(),
		app.cfg.AdminUsername,
		app.cfg.AdminEmail,
		app.cfg.AdminPassword,
	)
	if err != nil {
		return err
	}
	if created {
		app.logger.Info("seeded first-run admin account", "username", admin.Username)
	}
	return nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("blog service starting", "port", app.cfg.Port, "version", BuildVersion)

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
	app.logger.Info("shutting down blog service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("blog service stopped")
	return nil
}

// initDatabase opens the sqlite store and applies migrations.
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
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
	app.authService = &service.AuthService{
		Store:  app.db,
		Hasher: app.hasher,
		Tokens: app.tokens,
	}
	app.userService = &service.UserService{Store: app.db, Hasher: app.hasher}
	app.postService = &service.PostService{Store: app.db}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokens,
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.CORSOrigins,
		app.cfg.RateLimiting,
	)

	router.AuthService = app.authService
	router.UserService = app.userService
	router.PostService = app.postService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
