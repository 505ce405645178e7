package domain

import (
	"strconv"
	"time"
)

// ServiceItem is a single line item on a memo. Total is computed once when
// the item is added and never recalculated; memos are immutable after
// creation, so the cached value is the historical record.
type ServiceItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Total     int64  `json:"total"`
}

// Memo is an issued invoice. CustomerID is a weak reference: deleting the
// customer leaves the memo in place, and consumers must tolerate a missing
// referent. There is deliberately no way to update a memo once created.
type Memo struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customerId"`
	Items      []ServiceItem `json:"items"`
	TotalBill  int64         `json:"totalBill"`
	PaidAmount int64         `json:"paidAmount"`
	DueAmount  int64         `json:"dueAmount"`
	Date       int64         `json:"date"`
	MemoNumber string        `json:"memoNumber"`
}

// NewMemoNumber derives a human-readable memo number from the creation
// instant. Display-only: uniqueness holds in practice for a single process
// but is not enforced, so it must never be used as a key.
func NewMemoNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "MEMO-" + ms
}
