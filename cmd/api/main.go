package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopledger/internal/config"
	"shopledger/internal/httpserver"
	"shopledger/internal/kvstore"
	"shopledger/internal/persist"
	"shopledger/internal/reminder"
	"shopledger/internal/repository/shop"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	store, err := kvstore.Open(ctx, kvstore.Options{
		Backend:      cfg.StoreBackend,
		DataDir:      cfg.DataDir,
		Redis:        kvstore.RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB},
		DBConnString: cfg.DBConnString,
	})
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer store.Close()

	repo := shop.New(persist.New(store, logger), logger)
	// The initial load must finish before any mutation persists, or stored
	// data would be clobbered by the empty boot state.
	if err := repo.Load(ctx); err != nil {
		logger.Fatalf("load ledger: %v", err)
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Shop:              repo,
		Store:             store,
		Reminder:          reminder.NewBuilder(cfg.ShopName, cfg.PhoneCountryCode),
		ExpenseCategories: cfg.ExpenseCategories,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (store backend %s)", cfg.HTTPAddr, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
