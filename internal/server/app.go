// Package server initializes and runs the main application server.
// It selects a user store backend, wires the auth services, handles
// graceful shutdown, and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/matchpredictor/internal/logging"
	"github.com/dmitrijs2005/matchpredictor/internal/server/auth"
	"github.com/dmitrijs2005/matchpredictor/internal/server/config"
	hs "github.com/dmitrijs2005/matchpredictor/internal/server/http"
	"github.com/dmitrijs2005/matchpredictor/internal/server/shared/db"
	"github.com/dmitrijs2005/matchpredictor/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       db.RepositoryManager
	userService *users.Service
	tokens      *auth.TokenService
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	var (
		rm  db.RepositoryManager
		err error
	)
	if c.DatabaseDSN != "" {
		rm, err = db.NewPostgresRepositoryManager(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	} else {
		// No DSN configured: accounts live in process memory only and are
		// lost on restart.
		logger.Warn(context.Background(), "no database DSN configured, using in-memory user store")
		rm = db.NewInMemoryRepositoryManager()
	}

	tokens := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration)
	hasher := auth.NewBcryptHasher(c.BcryptCost)
	us := users.NewService(rm.Users(), hasher, tokens)

	return &App{config: c, logger: logger, repos: rm, userService: us, tokens: tokens}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := hs.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.tokens)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing user store", "error", err.Error())
	}
}
