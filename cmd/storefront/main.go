package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Parv9879/safare/internal/cart"
	"github.com/Parv9879/safare/internal/clients"
	"github.com/Parv9879/safare/internal/config"
	"github.com/Parv9879/safare/internal/httpapi"
	"github.com/Parv9879/safare/internal/session"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lmicroseconds)

	// Base HTTP client (shared)
	sharedHTTP := &http.Client{
		Timeout: cfg.UpstreamTimeout,
	}

	// Upstream clients
	cartBase := clients.NewClient("cart-service", cfg.CartURL, sharedHTTP)
	catalogBase := clients.NewClient("catalog-service", cfg.CatalogURL, sharedHTTP)

	cartClient := clients.NewCartClient(cartBase)
	catalogClient := clients.NewCatalogClient(catalogBase)

	sessions := session.NewManager()
	syncAdapter := cart.NewSyncAdapter(cartClient, logger)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:   logger,
		Cfg:      cfg,
		Sessions: sessions,
		Sync:     syncAdapter,
		Catalog:  catalogClient,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Printf("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("shutdown error: %v", err)
	}
	logger.Printf("shutdown complete")
}
