package importer

import (
	"context"
	"strings"
	"testing"

	"shopledger/internal/domain"
)

type captureWriter struct {
	snap domain.Snapshot
}

func (w *captureWriter) Save(_ context.Context, snap domain.Snapshot) error {
	w.snap = snap
	return nil
}

func TestRun_ImportsExport(t *testing.T) {
	export := `{
		"shop_customers": [
			{"id":"c1","name":"Karim","phone":"01711111111","address":"","createdAt":1700000000000},
			{"name":"no id, dropped","phone":"x"}
		],
		"shop_memos": [
			{"id":"m1","customerId":"c1","items":[{"id":"i1","name":"Service A","unitPrice":500,"quantity":2,"total":1000}],"totalBill":1000,"paidAmount":600,"dueAmount":400,"date":1700000300000,"memoNumber":"MEMO-300000"}
		],
		"shop_expenses": [
			{"id":"e1","category":"Rent","amount":5000,"date":1700000500000,"note":""}
		]
	}`

	w := &captureWriter{}
	counts, err := New(w).Run(context.Background(), strings.NewReader(export))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if counts.Customers != 1 || counts.Memos != 1 || counts.Expenses != 1 {
		t.Fatalf("unexpected counts %+v", counts)
	}
	if w.snap.Customers[0].Name != "Karim" {
		t.Fatalf("unexpected customer %+v", w.snap.Customers[0])
	}
	// Frozen totals come through untouched.
	if w.snap.Memos[0].DueAmount != 400 || w.snap.Memos[0].Items[0].Total != 1000 {
		t.Fatalf("memo totals must import verbatim, got %+v", w.snap.Memos[0])
	}
}

func TestRun_RejectsMalformedExport(t *testing.T) {
	w := &captureWriter{}
	if _, err := New(w).Run(context.Background(), strings.NewReader("{broken")); err == nil {
		t.Fatalf("expected decode error")
	}
}
