// Package importer loads a data export from the original browser-based
// ledger into the configured snapshot store. The export is a single JSON
// object keyed by the three localStorage keys the old app wrote.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"shopledger/internal/domain"
)

// SnapshotWriter persists a full snapshot. Implemented by persist.Bridge.
type SnapshotWriter interface {
	Save(ctx context.Context, snap domain.Snapshot) error
}

// Export mirrors the browser export format.
type Export struct {
	Customers []domain.Customer `json:"shop_customers"`
	Memos     []domain.Memo     `json:"shop_memos"`
	Expenses  []domain.Expense  `json:"shop_expenses"`
}

// Counts reports how many records of each kind were imported.
type Counts struct {
	Customers int
	Memos     int
	Expenses  int
}

// Importer decodes an export and writes it as one snapshot, replacing
// whatever the store currently holds.
type Importer struct {
	writer SnapshotWriter
}

func New(writer SnapshotWriter) *Importer {
	return &Importer{writer: writer}
}

// Run reads the export and persists it. Records are imported verbatim:
// totals frozen into old memos are historical fact, not something to
// recompute on the way in. Entries without an id are dropped.
func (i *Importer) Run(ctx context.Context, r io.Reader) (Counts, error) {
	var export Export
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return Counts{}, fmt.Errorf("decode export: %w", err)
	}

	snap := domain.Snapshot{
		Customers: dropMissingIDs(export.Customers, func(c domain.Customer) string { return c.ID }),
		Memos:     dropMissingIDs(export.Memos, func(m domain.Memo) string { return m.ID }),
		Expenses:  dropMissingIDs(export.Expenses, func(e domain.Expense) string { return e.ID }),
	}
	if err := i.writer.Save(ctx, snap); err != nil {
		return Counts{}, fmt.Errorf("save snapshot: %w", err)
	}
	return Counts{
		Customers: len(snap.Customers),
		Memos:     len(snap.Memos),
		Expenses:  len(snap.Expenses),
	}, nil
}

func dropMissingIDs[T any](list []T, id func(T) string) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if id(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
