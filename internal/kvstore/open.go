package kvstore

import (
	"context"
	"fmt"

	"shopledger/internal/db"
)

// Options selects and configures a Store backend.
type Options struct {
	Backend      string
	DataDir      string
	Redis        RedisOptions
	DBConnString string
}

// Open builds the Store named by Backend: "file", "redis" or "postgres".
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case "", "file":
		return NewFile(opts.DataDir)
	case "redis":
		return NewRedis(ctx, opts.Redis)
	case "postgres":
		pool, err := db.Connect(ctx, opts.DBConnString)
		if err != nil {
			return nil, fmt.Errorf("connect to db: %w", err)
		}
		return NewPostgres(pool), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
