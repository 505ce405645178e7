package main

import (
	"context"
	"flag"
	"log"
	"os"

	"shopledger/internal/config"
	"shopledger/internal/importer"
	"shopledger/internal/kvstore"
	"shopledger/internal/persist"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to a JSON export from the browser ledger")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

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

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open export: %v", err)
	}
	defer f.Close()

	counts, err := importer.New(persist.New(store, logger)).Run(ctx, f)
	if err != nil {
		logger.Fatalf("import: %v", err)
	}

	logger.Printf("imported %d customers, %d memos, %d expenses", counts.Customers, counts.Memos, counts.Expenses)
}
