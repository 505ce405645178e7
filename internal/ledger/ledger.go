// Package ledger holds the pure billing computations: per-memo totals,
// per-customer dues and their age, and the dashboard-wide aggregates.
// Everything here operates on snapshots passed in by the caller and keeps
// no state of its own.
package ledger

import (
	"fmt"
	"time"

	"shopledger/internal/domain"
)

const dayMillis = 24 * 60 * 60 * 1000

// Urgency grades how overdue a customer's oldest outstanding memo is.
type Urgency string

const (
	UrgencyNone   Urgency = "none"
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Aggregates are the dashboard-wide figures. NetProfit is gross sales minus
// expenses regardless of what has actually been collected; dues are reported
// separately rather than subtracted.
type Aggregates struct {
	TotalSales    int64 `json:"totalSales"`
	TotalDue      int64 `json:"totalDue"`
	TotalExpenses int64 `json:"totalExpenses"`
	NetProfit     int64 `json:"netProfit"`
}

// ItemTotal returns unitPrice times quantity, rejecting non-positive
// operands so no line item is ever created with a zero or negative total.
func ItemTotal(unitPrice int64, quantity int) (int64, error) {
	if unitPrice <= 0 {
		return 0, fmt.Errorf("%w: unit price must be positive", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	return unitPrice * int64(quantity), nil
}

// MemoTotals sums the cached line item totals and derives the outstanding
// due. Overpayment is not tracked as credit: the due is clamped at zero.
func MemoTotals(items []domain.ServiceItem, paidAmount int64) (totalBill, dueAmount int64) {
	for _, it := range items {
		totalBill += it.Total
	}
	dueAmount = totalBill - paidAmount
	if dueAmount < 0 {
		dueAmount = 0
	}
	return totalBill, dueAmount
}

// CustomerDue sums the due amounts of every memo referencing the customer.
// The customer is not looked up: an id with no memos, including one that was
// deleted, simply yields zero.
func CustomerDue(customerID string, memos []domain.Memo) int64 {
	var due int64
	for _, m := range memos {
		if m.CustomerID == customerID {
			due += m.DueAmount
		}
	}
	return due
}

// OverdueAgeDays returns whole days elapsed since the customer's oldest memo
// that still carries a due, or 0 when nothing is outstanding. Clock skew can
// place a memo in the future; elapsed time never reads negative.
func OverdueAgeDays(customerID string, memos []domain.Memo, now time.Time) int {
	var oldest int64
	found := false
	for _, m := range memos {
		if m.CustomerID != customerID || m.DueAmount <= 0 {
			continue
		}
		if !found || m.Date < oldest {
			oldest = m.Date
			found = true
		}
	}
	if !found {
		return 0
	}
	elapsed := now.UnixMilli() - oldest
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / dayMillis)
}

// ClassifyUrgency maps an overdue age to a band. Bounds are inclusive at the
// low end: exactly 3 days is medium, exactly 7 is high.
func ClassifyUrgency(days int) Urgency {
	switch {
	case days >= 7:
		return UrgencyHigh
	case days >= 3:
		return UrgencyMedium
	case days > 0:
		return UrgencyLow
	default:
		return UrgencyNone
	}
}

// DashboardAggregates computes the totals shown on the dashboard from the
// full memo and expense collections.
func DashboardAggregates(memos []domain.Memo, expenses []domain.Expense) Aggregates {
	var agg Aggregates
	for _, m := range memos {
		agg.TotalSales += m.TotalBill
		agg.TotalDue += m.DueAmount
	}
	for _, e := range expenses {
		agg.TotalExpenses += e.Amount
	}
	agg.NetProfit = agg.TotalSales - agg.TotalExpenses
	return agg
}

// MonthToDateExpenses sums expenses whose calendar month matches the
// reference date's month. The match is by month-of-year only, not a
// year-bounded window: an expense from the same month of a prior year is
// counted too. That is how the shipped ledger has always behaved, and stored
// history is read by both, so the quirk is kept rather than fixed.
func MonthToDateExpenses(expenses []domain.Expense, reference time.Time) int64 {
	month := reference.Month()
	var total int64
	for _, e := range expenses {
		if time.UnixMilli(e.Date).Month() == month {
			total += e.Amount
		}
	}
	return total
}
