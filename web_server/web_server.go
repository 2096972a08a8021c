package web_server

import (
	"context"
	nativeerrors "errors"
	"net/http"
	"time"

	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/GaryWal/gamingplatformfresh/logging"
	"github.com/GaryWal/gamingplatformfresh/stores"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const (
	// DefaultServeAddr is the default address to serve on.
	DefaultServeAddr = ":10000"
	// DefaultWriteTimeout is the default timeout for writing.
	DefaultWriteTimeout = 15 * time.Second
	// DefaultReadTimeout is the default timeout for reading.
	DefaultReadTimeout = 15 * time.Second
)

// Version is the version reported by the health and root endpoints.
const Version = "1.0.0"

type WebServer struct {
	config     Config
	httpServer *http.Server
	router     *mux.Router
	mall       *stores.Mall
	running    bool
}

// Config is the configuration that is used in order to create and run a web
// server.
type Config struct {
	// ServeAddr is the address for the web server to listen to.
	ServeAddr string
	// WriteTimeout is the duration to wait until write fails with a timeout.
	WriteTimeout time.Duration
	// ReadTimeout is the duration to wait until read fails with a timeout.
	ReadTimeout time.Duration
}

// NewWebServer creates a new WebServer and sets up initial stuff. It expects
// the passed Config to be filled correctly. If you need default values, these
// are exported as DefaultServeAddr, DefaultWriteTimeout and
// DefaultReadTimeout. Run it with WebServer.Run and do not forget to call
// WebServer.PopulateRoutes before.
func NewWebServer(config Config, mall *stores.Mall) (*WebServer, error) {
	if config.ServeAddr == "" {
		return nil, nativeerrors.New("no addr provided in config")
	}
	server := WebServer{
		config:  config,
		router:  mux.NewRouter(),
		mall:    mall,
		running: false,
	}
	// Enable logging.
	server.router.Use(loggingMiddleware)
	// Disable caching.
	server.router.Use(noCacheMiddleware)
	// Setup not found handler.
	server.router.NotFoundHandler = noCacheMiddleware(loggingMiddleware(http.NotFoundHandler()))
	// Enable CORS.
	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(server.router)
	server.httpServer = &http.Server{
		Handler:      handler,
		Addr:         config.ServeAddr,
		WriteTimeout: config.WriteTimeout,
		ReadTimeout:  config.ReadTimeout,
	}
	return &server, nil
}

// Run starts the web server. It blocks until the given context is done and
// the server is shut down.
func (server *WebServer) Run(ctx context.Context) error {
	// Check if already running.
	if server.running {
		return nativeerrors.New("web server already running")
	}
	server.running = true
	listenErr := make(chan error, 1)
	go func() {
		logging.WebServerLogger.Info("web server running at " + server.config.ServeAddr)
		err := server.httpServer.ListenAndServe()
		if err != nil && !nativeerrors.Is(err, http.ErrServerClosed) {
			listenErr <- errors.Wrap(err, "listen and serve", nil)
		}
	}()
	// Wait for stop command or listen failure.
	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown web server", nil)
	}
	return nil
}
