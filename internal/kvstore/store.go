// Package kvstore provides the opaque string-keyed blob store the
// persistence bridge writes ledger snapshots to. Backends are
// interchangeable; the bridge never sees more than Get/Set.
package kvstore

import "context"

// Store is a flat key-value blob store. Get returns domain.ErrNotFound for
// an absent key so callers can distinguish "never written" from a real
// read failure.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
