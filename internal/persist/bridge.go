// Package persist moves ledger snapshots between the in-memory collections
// and the key-value store. Loading is forgiving: a missing or corrupted blob
// becomes an empty collection and the process keeps running.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"shopledger/internal/domain"
	"shopledger/internal/kvstore"
)

// Store keys. These match the keys the original deployment wrote, so an
// existing data set loads without migration.
const (
	KeyCustomers = "shop_customers"
	KeyMemos     = "shop_memos"
	KeyExpenses  = "shop_expenses"
)

// Bridge serializes the three collections to and from a kvstore.Store.
type Bridge struct {
	store  kvstore.Store
	logger *log.Logger
}

// New returns a Bridge over the given store.
func New(store kvstore.Store, logger *log.Logger) *Bridge {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Bridge{store: store, logger: logger}
}

// Load reads all three collections. An absent key yields an empty list; so
// does a blob that fails to decode, which is logged and otherwise swallowed.
// Only a store-level read failure is returned as an error.
func (b *Bridge) Load(ctx context.Context) (domain.Snapshot, error) {
	customers, err := loadList[domain.Customer](ctx, b, KeyCustomers)
	if err != nil {
		return domain.Snapshot{}, err
	}
	memos, err := loadList[domain.Memo](ctx, b, KeyMemos)
	if err != nil {
		return domain.Snapshot{}, err
	}
	expenses, err := loadList[domain.Expense](ctx, b, KeyExpenses)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.Snapshot{Customers: customers, Memos: memos, Expenses: expenses}, nil
}

// Save writes all three collections as one logical snapshot. The collections
// are never persisted piecemeal, though each lives under its own key.
func (b *Bridge) Save(ctx context.Context, snap domain.Snapshot) error {
	if err := saveList(ctx, b, KeyCustomers, snap.Customers); err != nil {
		return err
	}
	if err := saveList(ctx, b, KeyMemos, snap.Memos); err != nil {
		return err
	}
	return saveList(ctx, b, KeyExpenses, snap.Expenses)
}

func loadList[T any](ctx context.Context, b *Bridge, key string) ([]T, error) {
	data, err := b.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		b.logger.Printf("persist: malformed blob for %s, starting empty: %v", key, err)
		return nil, nil
	}
	return list, nil
}

func saveList[T any](ctx context.Context, b *Bridge, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := b.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
