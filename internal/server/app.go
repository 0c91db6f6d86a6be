// Package server initializes and runs the application: it opens the
// database, applies migrations, constructs the authentication state and
// services, and starts the HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/devdan/contactbook/internal/logging"
	"github.com/devdan/contactbook/internal/server/auth"
	"github.com/devdan/contactbook/internal/server/config"
	"github.com/devdan/contactbook/internal/server/httpapi"
	"github.com/devdan/contactbook/internal/server/repositories/repomanager"
	"github.com/devdan/contactbook/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	// Authentication state is built once here and injected; nothing
	// reads it through package globals.
	codec := auth.NewCodec([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	revocations := auth.NewRevocationList()

	authService := services.NewAuthService(db, rm, codec, revocations)
	userService := services.NewUserService(db, rm)
	contactService := services.NewContactService(db, rm)
	addressService := services.NewAddressService(db, rm)

	srv := httpapi.NewServer(cfg.EndpointAddr, logger, codec, revocations,
		authService, userService, contactService, addressService)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
