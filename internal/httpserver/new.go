package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/cart"
	catalogRepo "ordering-kiosk/internal/catalog/repository"
	"ordering-kiosk/internal/checkout"
	"ordering-kiosk/internal/search"
	"ordering-kiosk/internal/session"
	"ordering-kiosk/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	menuRepo catalogRepo.Repository
	operator checkout.OperatorService
	registry *session.Registry

	// Presentation toggles surfaced through the kiosk config endpoint
	searchOpts   search.Options
	cartOpts     cart.Options
	checkoutOpts checkout.Options

	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Shared infrastructure
	MenuRepo catalogRepo.Repository
	Operator checkout.OperatorService
	Registry *session.Registry

	// Presentation toggles
	SearchOptions   search.Options
	CartOptions     cart.Options
	CheckoutOptions checkout.Options

	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		menuRepo:        cfg.MenuRepo,
		operator:        cfg.Operator,
		registry:        cfg.Registry,
		searchOpts:      cfg.SearchOptions,
		cartOpts:        cfg.CartOptions,
		checkoutOpts:    cfg.CheckoutOptions,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.menuRepo == nil {
		return errors.New("menu repository is required")
	}
	if srv.operator == nil {
		return errors.New("operator client is required")
	}
	if srv.registry == nil {
		return errors.New("session registry is required")
	}
	return nil
}

// Run maps all handlers and serves until the context is cancelled, then
// drains in-flight requests before returning.
func (srv HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on :%d", srv.port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
