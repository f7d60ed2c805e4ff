// Package server wires configuration, storage, services and the HTTP API
// into a runnable application.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/dmitrijs2005/contactkeeper/internal/server/config"
	"github.com/dmitrijs2005/contactkeeper/internal/server/httpserver"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpserver.HTTPServer
}

// NewApp opens the database, applies migrations and builds the HTTP server.
// Logs go to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger := logging.New(c.Env, w)
	if c.Env != logging.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	db, m, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	hasher := auth.NewPasswordHasher(c.BcryptCost)
	issuer := auth.NewTokenIssuer([]byte(c.SecretKey), c.TokenValidityDuration)

	us := services.NewUserService(db, m, hasher, issuer)
	cs := services.NewContactService(db, m)

	srv := httpserver.NewHTTPServer(c.HTTPAddress, logger, us, cs, issuer,
		httpserver.WithAllowedOrigins(c.AllowedOrigins),
		httpserver.WithShutdownTimeout(c.ShutdownTimeout),
		httpserver.WithHealthCheck(db),
	)

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then closes
// the database.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.DatabaseDriver, "env", app.config.Env)

	runErr := app.server.Run(ctx)
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
