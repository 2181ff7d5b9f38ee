package relay

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/kudos/internal/logging"
	"github.com/dmitrijs2005/kudos/internal/relay/config"
)

// App wires the relay handler into an HTTP server with signal-driven
// graceful shutdown.
type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(c *config.Config) *App {
	return &App{config: c, logger: logging.NewJSONLogger()}
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

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	dispatch := NewDispatcher(
		app.config.DispatchBaseURL,
		app.config.DispatchToken,
		app.config.DispatchRepo,
		app.config.DispatchTimeout,
	)

	mux := http.NewServeMux()
	mux.Handle("/api/submissions", NewHandler(dispatch, app.logger))

	server := &http.Server{Addr: app.config.EndpointAddr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "relay listening", "addr", app.config.EndpointAddr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	app.logger.Info(shutdownCtx, "shutting down relay")
	return server.Shutdown(shutdownCtx)
}
