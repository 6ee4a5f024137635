// Package server initializes and runs the tasktrack API server. It wires
// configuration, logging, the persistence backend, and the HTTP endpoint,
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mkarpenko/tasktrack/internal/logging"
	"github.com/mkarpenko/tasktrack/internal/server/accounts"
	"github.com/mkarpenko/tasktrack/internal/server/config"
	"github.com/mkarpenko/tasktrack/internal/server/rest"
	"github.com/mkarpenko/tasktrack/internal/server/shared/db"
	"github.com/mkarpenko/tasktrack/internal/server/tasks"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	repos          db.RepositoryManager
	accountService *accounts.Service
	taskService    *tasks.Service
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout)

	if cfg.UsesDefaultSecret() {
		logger.Warn(context.Background(),
			"signing secret is the insecure built-in default; set TASKTRACK_JWT_SECRET for production")
	}

	repos, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{
		config:         cfg,
		logger:         logger,
		repos:          repos,
		accountService: accounts.NewService(repos.Accounts(), cfg),
		taskService:    tasks.NewService(repos.Tasks()),
	}, nil
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

	s := rest.NewServer(app.config.EndpointAddr, app.logger,
		app.accountService, app.taskService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
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
		app.logger.Error(ctx, "error closing db", "error", err)
	}
}
