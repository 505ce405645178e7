package shop

import (
	"context"
	"errors"
	"testing"

	"shopledger/internal/domain"
	"shopledger/internal/ledger"
)

// memoryPersister is a lightweight snapshot store for tests.
type memoryPersister struct {
	snap      domain.Snapshot
	saveCalls int
	saveErr   error
}

func (p *memoryPersister) Load(_ context.Context) (domain.Snapshot, error) {
	return p.snap, nil
}

func (p *memoryPersister) Save(_ context.Context, snap domain.Snapshot) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.saveCalls++
	p.snap = snap
	return nil
}

func loadedRepo(t *testing.T) (*Repository, *memoryPersister) {
	t.Helper()
	p := &memoryPersister{}
	r := New(p, nil)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return r, p
}

func TestAddCustomer(t *testing.T) {
	r, p := loadedRepo(t)

	c, err := r.AddCustomer(context.Background(), CustomerDraft{Name: "Karim", Phone: "01711111111", Address: "Mirpur"})
	if err != nil {
		t.Fatalf("add customer: %v", err)
	}
	if c.ID == "" || c.CreatedAt == 0 {
		t.Fatalf("expected generated id and timestamp, got %+v", c)
	}
	if len(r.Customers()) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(r.Customers()))
	}
	if p.saveCalls != 1 {
		t.Fatalf("expected 1 snapshot save, got %d", p.saveCalls)
	}
}

func TestAddCustomer_RejectsMissingFields(t *testing.T) {
	r, p := loadedRepo(t)

	cases := []CustomerDraft{
		{Name: "", Phone: "017"},
		{Name: "   ", Phone: "017"},
		{Name: "Karim", Phone: ""},
		{Name: "Karim", Phone: "  "},
	}
	for _, draft := range cases {
		if _, err := r.AddCustomer(context.Background(), draft); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("draft %+v: expected ErrInvalidInput, got %v", draft, err)
		}
	}
	if len(r.Customers()) != 0 {
		t.Fatalf("rejected drafts must not mutate the collection")
	}
	if p.saveCalls != 0 {
		t.Fatalf("rejected drafts must not persist, got %d saves", p.saveCalls)
	}
}

func TestMutationBeforeLoadIsRefused(t *testing.T) {
	p := &memoryPersister{}
	r := New(p, nil)

	if _, err := r.AddCustomer(context.Background(), CustomerDraft{Name: "K", Phone: "1"}); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("expected ErrNotLoaded, got %v", err)
	}
	if p.saveCalls != 0 {
		t.Fatalf("nothing may be written before the initial load, got %d saves", p.saveCalls)
	}
}

func TestUpdateCustomer(t *testing.T) {
	r, _ := loadedRepo(t)
	ctx := context.Background()

	c, err := r.AddCustomer(ctx, CustomerDraft{Name: "Karim", Phone: "017", Address: "Mirpur"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	newPhone := "01899999999"
	updated, err := r.UpdateCustomer(ctx, c.ID, CustomerPatch{Phone: &newPhone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != newPhone {
		t.Fatalf("expected phone updated, got %+v", updated)
	}
	if updated.Name != "Karim" || updated.Address != "Mirpur" {
		t.Fatalf("untouched fields must survive, got %+v", updated)
	}
	if updated.ID != c.ID || updated.CreatedAt != c.CreatedAt {
		t.Fatalf("id and createdAt are immutable, got %+v", updated)
	}
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	r, _ := loadedRepo(t)
	name := "X"
	if _, err := r.UpdateCustomer(context.Background(), "absent", CustomerPatch{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCustomer_RejectsEmptyRequiredField(t *testing.T) {
	r, _ := loadedRepo(t)
	ctx := context.Background()
	c, _ := r.AddCustomer(ctx, CustomerDraft{Name: "Karim", Phone: "017"})

	empty := "  "
	if _, err := r.UpdateCustomer(ctx, c.ID, CustomerPatch{Name: &empty}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRemoveCustomer_IdempotentAndNoCascade(t *testing.T) {
	r, _ := loadedRepo(t)
	ctx := context.Background()

	c, _ := r.AddCustomer(ctx, CustomerDraft{Name: "Karim", Phone: "017"})
	if _, err := r.AddMemo(ctx, MemoDraft{
		CustomerID: c.ID,
		Items:      []ItemDraft{{Name: "Service A", UnitPrice: 100, Quantity: 1}},
	}); err != nil {
		t.Fatalf("add memo: %v", err)
	}

	if err := r.RemoveCustomer(ctx, c.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := r.RemoveCustomer(ctx, c.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second remove should signal not-found, got %v", err)
	}

	// The memo keeps its now-dangling reference.
	memos := r.Memos()
	if len(memos) != 1 || memos[0].CustomerID != c.ID {
		t.Fatalf("customer deletion must not cascade to memos, got %+v", memos)
	}
}

func TestAddMemo_FreezesTotals(t *testing.T) {
	r, _ := loadedRepo(t)
	ctx := context.Background()

	c, err := r.AddCustomer(ctx, CustomerDraft{Name: "Karim", Phone: "01711111111"})
	if err != nil {
		t.Fatalf("add customer: %v", err)
	}

	m, err := r.AddMemo(ctx, MemoDraft{
		CustomerID: c.ID,
		Items:      []ItemDraft{{Name: "Service A", UnitPrice: 500, Quantity: 2}},
		PaidAmount: 600,
	})
	if err != nil {
		t.Fatalf("add memo: %v", err)
	}
	if m.TotalBill != 1000 {
		t.Fatalf("expected total bill 1000, got %d", m.TotalBill)
	}
	if m.DueAmount != 400 {
		t.Fatalf("expected due 400, got %d", m.DueAmount)
	}
	if len(m.Items) != 1 || m.Items[0].Total != 1000 {
		t.Fatalf("expected frozen item total 1000, got %+v", m.Items)
	}
	if m.MemoNumber == "" || m.Date == 0 {
		t.Fatalf("expected memo number and date, got %+v", m)
	}

	if due := ledger.CustomerDue(c.ID, r.Memos()); due != 400 {
		t.Fatalf("expected customer due 400, got %d", due)
	}
}

func TestAddMemo_Rejections(t *testing.T) {
	r, p := loadedRepo(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		draft MemoDraft
	}{
		{"no customer", MemoDraft{Items: []ItemDraft{{Name: "A", UnitPrice: 10, Quantity: 1}}}},
		{"no items", MemoDraft{CustomerID: "c1"}},
		{"zero price item", MemoDraft{CustomerID: "c1", Items: []ItemDraft{{Name: "A", UnitPrice: 0, Quantity: 1}}}},
		{"zero quantity item", MemoDraft{CustomerID: "c1", Items: []ItemDraft{{Name: "A", UnitPrice: 10, Quantity: 0}}}},
		{"negative paid", MemoDraft{CustomerID: "c1", Items: []ItemDraft{{Name: "A", UnitPrice: 10, Quantity: 1}}, PaidAmount: -1}},
	}
	for _, tc := range cases {
		if _, err := r.AddMemo(ctx, tc.draft); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
	if len(r.Memos()) != 0 || p.saveCalls != 0 {
		t.Fatalf("rejected memos must not mutate or persist")
	}
}

func TestAddExpense(t *testing.T) {
	r, _ := loadedRepo(t)
	ctx := context.Background()

	e, err := r.AddExpense(ctx, ExpenseDraft{Category: "Rent", Amount: 5000, Note: "shop rent"})
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if e.ID == "" || e.Date == 0 {
		t.Fatalf("expected generated id and date, got %+v", e)
	}

	for _, amount := range []int64{0, -10} {
		if _, err := r.AddExpense(ctx, ExpenseDraft{Category: "Rent", Amount: amount}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("amount %d: expected ErrInvalidInput, got %v", amount, err)
		}
	}
}

func TestRemoveMemoAndExpense(t *testing.T) {
	r, _ := loadedRepo(t)
	ctx := context.Background()

	m, err := r.AddMemo(ctx, MemoDraft{CustomerID: "c1", Items: []ItemDraft{{Name: "A", UnitPrice: 10, Quantity: 1}}})
	if err != nil {
		t.Fatalf("add memo: %v", err)
	}
	e, err := r.AddExpense(ctx, ExpenseDraft{Category: "Other", Amount: 50})
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}

	if err := r.RemoveMemo(ctx, m.ID); err != nil {
		t.Fatalf("remove memo: %v", err)
	}
	if err := r.RemoveMemo(ctx, m.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat removal, got %v", err)
	}
	if err := r.RemoveExpense(ctx, e.ID); err != nil {
		t.Fatalf("remove expense: %v", err)
	}
	if err := r.RemoveExpense(ctx, "absent"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadRestoresPersistedState(t *testing.T) {
	p := &memoryPersister{snap: domain.Snapshot{
		Customers: []domain.Customer{{ID: "c1", Name: "Karim", Phone: "017", CreatedAt: 1}},
		Memos:     []domain.Memo{{ID: "m1", CustomerID: "c1", TotalBill: 100, DueAmount: 100, Date: 2}},
		Expenses:  []domain.Expense{{ID: "e1", Category: "Rent", Amount: 500, Date: 3}},
	}}
	r := New(p, nil)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if got, err := r.CustomerByID("c1"); err != nil || got.Name != "Karim" {
		t.Fatalf("expected restored customer, got %+v err %v", got, err)
	}
	if got, err := r.MemoByID("m1"); err != nil || got.DueAmount != 100 {
		t.Fatalf("expected restored memo, got %+v err %v", got, err)
	}
	if len(r.Expenses()) != 1 {
		t.Fatalf("expected restored expense")
	}
}

func TestPersistFailureIsReported(t *testing.T) {
	p := &memoryPersister{}
	r := New(p, nil)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	p.saveErr = errors.New("disk full")

	if _, err := r.AddCustomer(context.Background(), CustomerDraft{Name: "K", Phone: "1"}); err == nil {
		t.Fatalf("expected save failure to surface")
	}
	// The in-memory collection remains authoritative; the next successful
	// save writes the full snapshot again.
	if len(r.Customers()) != 1 {
		t.Fatalf("expected mutation retained in memory")
	}
}
