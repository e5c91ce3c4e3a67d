package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ordering-kiosk/config"
	_ "ordering-kiosk/docs" // Swagger docs
	"ordering-kiosk/internal/cart"
	catalogStatic "ordering-kiosk/internal/catalog/repository/static"
	catalogUC "ordering-kiosk/internal/catalog/usecase"
	"ordering-kiosk/internal/checkout"
	"ordering-kiosk/internal/httpserver"
	"ordering-kiosk/internal/search"
	"ordering-kiosk/internal/session"
	"ordering-kiosk/pkg/log"
	"ordering-kiosk/pkg/operator"
)

// @title       Ordering Kiosk API
// @description Self-service ordering kiosk: menu browsing with debounced search, a per-session cart and checkout forms backed by a remote operator service.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Ordering Kiosk...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Operator backend: %s", cfg.Operator.BaseURL)

	// 3. Catalog
	menuRepo, err := catalogStatic.New(catalogStatic.DefaultMenu(), logger)
	if err != nil {
		logger.Error(ctx, "Failed to load menu: ", err)
		return
	}

	// 4. Operator client
	operatorClient := operator.NewClient(cfg.Operator.BaseURL, cfg.Operator.Token)

	// 5. Session registry
	searchOpts := search.Options{
		Delay:       cfg.Search.DebounceDelay,
		Placeholder: cfg.Search.Placeholder,
		ShowClear:   cfg.Search.ShowClear,
	}
	cartOpts := cart.Options{
		SettleDelay:                cfg.Cart.SettleDelay,
		RequireRemovalConfirmation: cfg.Cart.RequireRemovalConfirmation,
	}
	checkoutOpts := checkout.Options{
		SuccessDisplayDelay: cfg.Checkout.SuccessDisplayDelay,
	}

	registry := session.NewRegistry(session.Deps{
		Resolver: catalogUC.NewResolver(menuRepo),
		Operator: operatorClient,
		Searcher: catalogUC.NewSearcher(menuRepo).Search,
		Search:   searchOpts,
		Cart:     cartOpts,
		Checkout: checkoutOpts,
		Logger:   logger,
	}, session.Options{
		TTL:         cfg.Session.TTL,
		MaxSessions: cfg.Session.MaxSessions,
	}, logger)
	defer registry.Shutdown()

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		MenuRepo:        menuRepo,
		Operator:        operatorClient,
		Registry:        registry,
		SearchOptions:   searchOpts,
		CartOptions:     cartOpts,
		CheckoutOptions: checkoutOpts,
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
