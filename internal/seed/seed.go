// Package seed writes a small demo ledger for manual testing.
package seed

import (
	"context"
	"fmt"
	"time"

	"shopledger/internal/domain"
	"shopledger/internal/ledger"
)

// SnapshotWriter persists a full snapshot. Implemented by persist.Bridge.
type SnapshotWriter interface {
	Save(ctx context.Context, snap domain.Snapshot) error
}

// Apply replaces the stored snapshot with a demo data set: three customers,
// a mix of settled and outstanding memos, and a few expenses.
func Apply(ctx context.Context, writer SnapshotWriter) error {
	now := time.Now()

	customers := []domain.Customer{
		demoCustomer("করিম আহমেদ", "01711111111", "মিরপুর, ঢাকা", now.Add(-30*24*time.Hour)),
		demoCustomer("রহিম উদ্দিন", "01722222222", "ধানমন্ডি, ঢাকা", now.Add(-20*24*time.Hour)),
		demoCustomer("সালমা বেগম", "01833333333", "", now.Add(-5*24*time.Hour)),
	}

	memos := []domain.Memo{
		demoMemo(customers[0].ID, now.Add(-10*24*time.Hour), 600, []domain.ServiceItem{
			demoItem("সার্ভিসিং", 500, 2),
		}),
		demoMemo(customers[0].ID, now.Add(-2*24*time.Hour), 250, []domain.ServiceItem{
			demoItem("পার্টস বদল", 250, 1),
		}),
		demoMemo(customers[1].ID, now.Add(-8*24*time.Hour), 100, []domain.ServiceItem{
			demoItem("মেরামত", 300, 1),
		}),
	}

	expenses := []domain.Expense{
		demoExpense("ভাড়া", 5000, now.Add(-15*24*time.Hour), "দোকান ভাড়া"),
		demoExpense("বিদ্যুৎ বিল", 1200, now.Add(-7*24*time.Hour), ""),
		demoExpense("যাতায়াত", 300, now.Add(-24*time.Hour), ""),
	}

	snap := domain.Snapshot{Customers: customers, Memos: memos, Expenses: expenses}
	if err := writer.Save(ctx, snap); err != nil {
		return fmt.Errorf("save demo snapshot: %w", err)
	}
	return nil
}

func demoCustomer(name, phone, address string, createdAt time.Time) domain.Customer {
	return domain.Customer{
		ID:        domain.NewID(),
		Name:      name,
		Phone:     phone,
		Address:   address,
		CreatedAt: createdAt.UnixMilli(),
	}
}

func demoItem(name string, unitPrice int64, quantity int) domain.ServiceItem {
	total, _ := ledger.ItemTotal(unitPrice, quantity)
	return domain.ServiceItem{
		ID:        domain.NewID(),
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Total:     total,
	}
}

func demoMemo(customerID string, date time.Time, paid int64, items []domain.ServiceItem) domain.Memo {
	totalBill, dueAmount := ledger.MemoTotals(items, paid)
	return domain.Memo{
		ID:         domain.NewID(),
		CustomerID: customerID,
		Items:      items,
		TotalBill:  totalBill,
		PaidAmount: paid,
		DueAmount:  dueAmount,
		Date:       date.UnixMilli(),
		MemoNumber: domain.NewMemoNumber(date),
	}
}

func demoExpense(category string, amount int64, date time.Time, note string) domain.Expense {
	return domain.Expense{
		ID:       domain.NewID(),
		Category: category,
		Amount:   amount,
		Date:     date.UnixMilli(),
		Note:     note,
	}
}
