// Package server initializes and runs the firstweek server: it opens the
// configured storage, builds the member service and serves it over HTTP and
// gRPC until the process is signalled to stop.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/firstweek/internal/logging"
	"github.com/dmitrijs2005/firstweek/internal/server/config"
	"github.com/dmitrijs2005/firstweek/internal/server/httpserver"
	"github.com/dmitrijs2005/firstweek/internal/server/services"
	"github.com/dmitrijs2005/firstweek/internal/server/storage"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/firstweek/internal/server/grpc"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	storage    *storage.Storage
	httpServer *httpserver.HTTPServer
	grpcServer *gs.GRPCServer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(c.LogFormat, os.Stdout)

	st, err := storage.Open(ctx, c.StorageDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	ms := services.NewMemberService(st.Members)

	hs, err := httpserver.NewHTTPServer(c.EndpointAddrHTTP, c.ShutdownTimeout, logger, ms, st)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("http server init error: %w", err)
	}

	return &App{
		config:     c,
		logger:     logger,
		storage:    st,
		httpServer: hs,
		grpcServer: gs.NewGRPCServer(c.EndpointAddrGRPC, logger, ms),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Received signal", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves HTTP and gRPC until ctx is cancelled, a signal arrives or one
// of the servers fails. Storage is closed before Run returns.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.storage.Driver)

	app.initSignalHandler(ctx, cancelFunc)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.httpServer.Run(gctx)
	})

	g.Go(func() error {
		return app.grpcServer.Run(gctx)
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if cerr := app.storage.Close(); cerr != nil {
		app.logger.Error(ctx, "error closing storage", "error", cerr)
	}

	if s, ok := app.logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}

	app.logger.Info(ctx, "App stopped")

	return err
}
