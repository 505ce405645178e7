package main

import (
	"context"
	"log"
	"os"

	"shopledger/internal/config"
	"shopledger/internal/kvstore"
	"shopledger/internal/persist"
	"shopledger/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

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

	if err := seed.Apply(ctx, persist.New(store, logger)); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
